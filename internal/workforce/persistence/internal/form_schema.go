package internal

import (
	"encoding/json"
	"workforce-server/internal/workforce/domain"
)

// FormSchemaData is the stored JSON shape of a duty's form schema.
type FormSchemaData struct {
	Title                    string      `json:"title"`
	Description              string      `json:"description,omitempty"`
	Fields                   []FieldData `json:"fields"`
	SubmitButtonText         string      `json:"submit_button_text,omitempty"`
	AllowMultipleSubmissions bool        `json:"allow_multiple_submissions"`
	SubmissionLimit          *int        `json:"submission_limit,omitempty"`
}

type FieldData struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Label        string               `json:"label,omitempty"`
	Placeholder  string               `json:"placeholder,omitempty"`
	Required     bool                 `json:"required"`
	Options      []FieldOptionData    `json:"options,omitempty"`
	Validation   *FieldValidationData `json:"validation,omitempty"`
	DefaultValue any                  `json:"default_value,omitempty"`
	HelpText     string               `json:"help_text,omitempty"`
	Condition    *FieldConditionData  `json:"condition,omitempty"`
}

type FieldOptionData struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FieldValidationData struct {
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

type FieldConditionData struct {
	DependsOn string `json:"depends_on"`
	ShowWhen  string `json:"show_when,omitempty"`
	HideWhen  string `json:"hide_when,omitempty"`
}

func FromFormSchema(value domain.FormSchema) FormSchemaData {
	fields := make([]FieldData, len(value.Fields))
	for i, field := range value.Fields {
		fields[i] = fromField(field)
	}

	return FormSchemaData{
		Title:                    value.Title,
		Description:              value.Description,
		Fields:                   fields,
		SubmitButtonText:         value.SubmitButtonText,
		AllowMultipleSubmissions: value.AllowMultipleSubmissions,
		SubmissionLimit:          value.SubmissionLimit,
	}
}

func (s FormSchemaData) ToDomain() domain.FormSchema {
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

func fromField(value domain.Field) FieldData {
	data := FieldData{
		Name:         value.Name,
		Type:         string(value.Type),
		Label:        value.Label,
		Placeholder:  value.Placeholder,
		Required:     value.Required,
		DefaultValue: value.DefaultValue,
		HelpText:     value.HelpText,
	}

	for _, option := range value.Options {
		data.Options = append(data.Options, FieldOptionData(option))
	}

	if value.Validation != nil {
		validation := FieldValidationData(*value.Validation)
		data.Validation = &validation
	}

	if value.Condition != nil {
		condition := FieldConditionData(*value.Condition)
		data.Condition = &condition
	}

	return data
}

func (f FieldData) toDomain() domain.Field {
	field := domain.Field{
		Name:         f.Name,
		Type:         domain.FieldType(f.Type),
		Label:        f.Label,
		Placeholder:  f.Placeholder,
		Required:     f.Required,
		DefaultValue: f.DefaultValue,
		HelpText:     f.HelpText,
	}

	for _, option := range f.Options {
		field.Options = append(field.Options, domain.FieldOption(option))
	}

	if f.Validation != nil {
		validation := domain.FieldValidation(*f.Validation)
		field.Validation = &validation
	}

	if f.Condition != nil {
		condition := domain.FieldCondition(*f.Condition)
		field.Condition = &condition
	}

	return field
}

func MarshalFormSchema(value domain.FormSchema) string {
	data, _ := json.Marshal(FromFormSchema(value))
	return string(data)
}

func UnmarshalFormSchema(value string) domain.FormSchema {
	var data FormSchemaData
	json.Unmarshal([]byte(value), &data)
	return data.ToDomain()
}
