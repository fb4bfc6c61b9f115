package internal

import (
	"workforce-server/internal/workforce/domain"
)

type FormSchema struct {
	Title                    string  `json:"title,omitempty"`
	Description              string  `json:"description,omitempty"`
	Fields                   []Field `json:"fields"`
	SubmitButtonText         string  `json:"submit_button_text,omitempty"`
	AllowMultipleSubmissions bool    `json:"allow_multiple_submissions,omitempty"`
	SubmissionLimit          *int    `json:"submission_limit,omitempty"`
}

type Field struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Label        string           `json:"label,omitempty"`
	Placeholder  string           `json:"placeholder,omitempty"`
	Required     bool             `json:"required,omitempty"`
	Options      []FieldOption    `json:"options,omitempty"`
	Validation   *FieldValidation `json:"validation,omitempty"`
	DefaultValue any              `json:"default_value,omitempty"`
	HelpText     string           `json:"help_text,omitempty"`
	Condition    *FieldCondition  `json:"condition,omitempty"`
}

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FieldValidation struct {
	MinLength        *int     `json:"min_length,omitempty"`
	MaxLength        *int     `json:"max_length,omitempty"`
	Min              *float64 `json:"min,omitempty"`
	Max              *float64 `json:"max,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	PatternMessage   string   `json:"pattern_message,omitempty"`
	AllowedMimeTypes []string `json:"allowed_mime_types,omitempty"`
	MaxFileSizeBytes int64    `json:"max_file_size_bytes,omitempty"`
	MaxFiles         int      `json:"max_files,omitempty"`
}

type FieldCondition struct {
	DependsOn string `json:"depends_on"`
	ShowWhen  string `json:"show_when,omitempty"`
	HideWhen  string `json:"hide_when,omitempty"`
}

func (s FormSchema) ToDomain() domain.FormSchema {
	fields := make([]domain.Field, len(s.Fields))
	for i, field := range s.Fields {
		fields[i] = field.toDomain()
	}

	return domain.FormSchema{
		Title:                    s.Title,
		Description:              s.Description,
		Fields:                   fields,
		SubmitButtonText:         s.SubmitButtonText,
		AllowMultipleSubmissions: s.AllowMultipleSubmissions,
		SubmissionLimit:          s.SubmissionLimit,
	}
}

func (f Field) toDomain() domain.Field {
	options := make([]domain.FieldOption, len(f.Options))
	for i, option := range f.Options {
		options[i] = domain.FieldOption(option)
	}

	var validation *domain.FieldValidation
	if f.Validation != nil {
		value := domain.FieldValidation(*f.Validation)
		validation = &value
	}

	var condition *domain.FieldCondition
	if f.Condition != nil {
		value := domain.FieldCondition(*f.Condition)
		condition = &value
	}

	return domain.Field{
		Name:         f.Name,
		Type:         domain.FieldType(f.Type),
		Label:        f.Label,
		Placeholder:  f.Placeholder,
		Required:     f.Required,
		Options:      options,
		Validation:   validation,
		DefaultValue: f.DefaultValue,
		HelpText:     f.HelpText,
		Condition:    condition,
	}
}

func FromFormSchema(value domain.FormSchema) FormSchema {
	fields := make([]Field, len(value.Fields))
	for i, field := range value.Fields {
		fields[i] = fromField(field)
	}

	return FormSchema{
		Title:                    value.Title,
		Description:              value.Description,
		Fields:                   fields,
		SubmitButtonText:         value.SubmitButtonText,
		AllowMultipleSubmissions: value.AllowMultipleSubmissions,
		SubmissionLimit:          value.SubmissionLimit,
	}
}

func fromField(value domain.Field) Field {
	options := make([]FieldOption, len(value.Options))
	for i, option := range value.Options {
		options[i] = FieldOption(option)
	}

	var validation *FieldValidation
	if value.Validation != nil {
		converted := FieldValidation(*value.Validation)
		validation = &converted
	}

	var condition *FieldCondition
	if value.Condition != nil {
		converted := FieldCondition(*value.Condition)
		condition = &converted
	}

	return Field{
		Name:         value.Name,
		Type:         string(value.Type),
		Label:        value.Label,
		Placeholder:  value.Placeholder,
		Required:     value.Required,
		Options:      options,
		Validation:   validation,
		DefaultValue: value.DefaultValue,
		HelpText:     value.HelpText,
		Condition:    condition,
	}
}
