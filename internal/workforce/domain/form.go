package domain

import (
	"fmt"
	"regexp"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeTime     FieldType = "time"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeURL      FieldType = "url"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypePassword FieldType = "password"
	FieldTypeFile     FieldType = "file"
	FieldTypeRange    FieldType = "range"
	FieldTypeColor    FieldType = "color"
	FieldTypeSearch   FieldType = "search"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeDate,
		FieldTypeDatetime, FieldTypeTime, FieldTypeSelect, FieldTypeRadio,
		FieldTypeCheckbox, FieldTypeURL, FieldTypeEmail, FieldTypeTel,
		FieldTypePassword, FieldTypeFile, FieldTypeRange, FieldTypeColor,
		FieldTypeSearch:
		return true
	}
	return false
}

// HasOptions reports whether the field type requires a declared option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

type FieldOption struct {
	Label string
	Value string
}

type FieldValidation struct {
	MinLength        *int
	MaxLength        *int
	Min              *float64
	Max              *float64
	Pattern          string
	PatternMessage   string
	AllowedMimeTypes []string
	MaxFileSizeBytes int64
	MaxFiles         int
}

// FieldCondition declares client-side show/hide behavior. It is carried
// through the schema but never evaluated server-side.
type FieldCondition struct {
	DependsOn string
	ShowWhen  string
	HideWhen  string
}

type Field struct {
	Name         string
	Type         FieldType
	Label        string
	Placeholder  string
	Required     bool
	Options      []FieldOption
	Validation   *FieldValidation
	DefaultValue any
	HelpText     string
	Condition    *FieldCondition
}

// DisplayName is the name used in user-facing error messages.
func (f Field) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

type FormSchema struct {
	Title                    string
	Description              string
	Fields                   []Field
	SubmitButtonText         string
	AllowMultipleSubmissions bool
	SubmissionLimit          *int
}

var fieldNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Validate checks structural well-formedness of the schema. All problems are
// reported together; a nil return means the schema is safe to persist.
func (s FormSchema) Validate() *ValidationError {
	var errs []string

	if len(s.Fields) == 0 {
		errs = append(errs, "schema must declare at least one field")
	}

	if s.SubmissionLimit != nil && *s.SubmissionLimit <= 0 {
		errs = append(errs, "submission limit must be a positive integer")
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "" {
			errs = append(errs, "field name is required")
			continue
		}

		if !fieldNamePattern.MatchString(field.Name) {
			errs = append(errs, fmt.Sprintf("field name '%s' must be identifier-safe", field.Name))
		}

		if seen[field.Name] {
			errs = append(errs, fmt.Sprintf("duplicate field name '%s'", field.Name))
		}
		seen[field.Name] = true

		if !field.Type.IsValid() {
			errs = append(errs, fmt.Sprintf("field '%s' has unknown type '%s'", field.Name, field.Type))
			continue
		}

		if field.Type.HasOptions() && len(field.Options) == 0 {
			errs = append(errs, fmt.Sprintf("field '%s' of type %s requires options", field.Name, field.Type))
		}

		if field.Type == FieldTypeFile {
			if field.Validation == nil || len(field.Validation.AllowedMimeTypes) == 0 {
				errs = append(errs, fmt.Sprintf("file field '%s' requires allowed mime types", field.Name))
			}
			if field.Validation == nil || field.Validation.MaxFileSizeBytes <= 0 {
				errs = append(errs, fmt.Sprintf("file field '%s' requires a positive max file size", field.Name))
			}
		}

		if field.Validation != nil && field.Validation.Pattern != "" {
			if _, err := regexp.Compile(field.Validation.Pattern); err != nil {
				errs = append(errs, fmt.Sprintf("field '%s' has an invalid pattern", field.Name))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// FieldByName returns the field declaration for name.
func (s FormSchema) FieldByName(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
