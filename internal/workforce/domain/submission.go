package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ValueKind discriminates the typed submission values produced by validation.
type ValueKind string

const (
	ValueKindText   ValueKind = "text"
	ValueKindNumber ValueKind = "number"
	ValueKindList   ValueKind = "list"
	ValueKindFiles  ValueKind = "files"
)

type FileDescriptor struct {
	Filename  string
	Path      string
	MimeType  string
	SizeBytes int64
}

// FieldValue is the tagged union handed to the lifecycle manager once the
// raw payload has been validated against the schema.
type FieldValue struct {
	Kind   ValueKind
	Text   string
	Number float64
	List   []string
	Files  []FileDescriptor
}

type SubmissionData map[string]FieldValue

type ValidationResult struct {
	Valid  bool
	Errors []string
	Data   SubmissionData
}

// ValidateSubmission checks payload against schema. It is pure and
// deterministic: all applicable rules run for every field, errors accumulate
// in field declaration order, and nothing is persisted or mutated.
func ValidateSubmission(schema FormSchema, payload map[string]any) ValidationResult {
	result := ValidationResult{
		Data: make(SubmissionData, len(schema.Fields)),
	}

	for _, field := range schema.Fields {
		raw, present := payload[field.Name]

		if field.Type == FieldTypeFile {
			validateFileField(field, raw, &result)
			continue
		}

		if !present || isEmptyValue(raw) {
			if field.Required {
				result.Errors = append(result.Errors, fmt.Sprintf("%s is required", field.DisplayName()))
			}
			continue
		}

		switch field.Type {
		case FieldTypeEmail:
			validateEmailField(field, raw, &result)
		case FieldTypeURL:
			validateURLField(field, raw, &result)
		case FieldTypeNumber:
			validateNumberField(field, raw, &result)
		case FieldTypeText, FieldTypeTextarea:
			validateTextField(field, raw, &result)
		case FieldTypeSelect, FieldTypeRadio:
			validateChoiceField(field, raw, &result)
		case FieldTypeCheckbox:
			validateCheckboxField(field, raw, &result)
		default:
			// remaining types carry opaque text values
			result.Data[field.Name] = FieldValue{Kind: ValueKindText, Text: stringValue(raw)}
		}
	}

	result.Valid = len(result.Errors) == 0
	if !result.Valid {
		result.Data = nil
	}

	return result
}

func isEmptyValue(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

func stringValue(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

func validateEmailField(field Field, raw any, result *ValidationResult) {
	value := stringValue(raw)
	if _, err := mail.ParseAddress(value); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a valid email address", field.DisplayName()))
		return
	}
	result.Data[field.Name] = FieldValue{Kind: ValueKindText, Text: value}
}

func validateURLField(field Field, raw any, result *ValidationResult) {
	value := stringValue(raw)
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a valid URL", field.DisplayName()))
		return
	}
	result.Data[field.Name] = FieldValue{Kind: ValueKindText, Text: value}
}

func validateNumberField(field Field, raw any, result *ValidationResult) {
	number, ok := numericValue(raw)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a number", field.DisplayName()))
		return
	}

	if field.Validation != nil {
		if field.Validation.Min != nil && number < *field.Validation.Min {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be at least %v", field.DisplayName(), *field.Validation.Min))
		}
		if field.Validation.Max != nil && number > *field.Validation.Max {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be at most %v", field.DisplayName(), *field.Validation.Max))
		}
	}

	result.Data[field.Name] = FieldValue{Kind: ValueKindNumber, Number: number}
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		number, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return number, err == nil
	}
	return 0, false
}

func validateTextField(field Field, raw any, result *ValidationResult) {
	value := stringValue(raw)

	if field.Validation != nil {
		if field.Validation.MinLength != nil && len(value) < *field.Validation.MinLength {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be at least %d characters", field.DisplayName(), *field.Validation.MinLength))
		}
		if field.Validation.MaxLength != nil && len(value) > *field.Validation.MaxLength {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be at most %d characters", field.DisplayName(), *field.Validation.MaxLength))
		}
		if field.Validation.Pattern != "" {
			pattern, err := regexp.Compile(field.Validation.Pattern)
			if err != nil || !pattern.MatchString(value) {
				message := field.Validation.PatternMessage
				if message == "" {
					message = fmt.Sprintf("%s format is invalid", field.DisplayName())
				}
				result.Errors = append(result.Errors, message)
			}
		}
	}

	result.Data[field.Name] = FieldValue{Kind: ValueKindText, Text: value}
}

func validateChoiceField(field Field, raw any, result *ValidationResult) {
	value := stringValue(raw)
	if !optionExists(field.Options, value) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be one of the available options", field.DisplayName()))
		return
	}
	result.Data[field.Name] = FieldValue{Kind: ValueKindText, Text: value}
}

func validateCheckboxField(field Field, raw any, result *ValidationResult) {
	values, ok := stringSlice(raw)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a list of options", field.DisplayName()))
		return
	}

	var invalid []string
	for _, value := range values {
		if !optionExists(field.Options, value) {
			invalid = append(invalid, value)
		}
	}
	if len(invalid) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%s contains invalid options: %s", field.DisplayName(), strings.Join(invalid, ", ")))
		return
	}

	result.Data[field.Name] = FieldValue{Kind: ValueKindList, List: values}
}

func validateFileField(field Field, raw any, result *ValidationResult) {
	files, ok := fileDescriptors(raw)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a list of files", field.DisplayName()))
		return
	}

	// for file fields "empty" means an empty file list
	if len(files) == 0 {
		if field.Required {
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required", field.DisplayName()))
		}
		return
	}

	validation := field.Validation
	if validation == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s has no file constraints configured", field.DisplayName()))
		return
	}

	errsBefore := len(result.Errors)

	if validation.MaxFiles > 0 && len(files) > validation.MaxFiles {
		result.Errors = append(result.Errors, fmt.Sprintf("%s accepts at most %d files", field.DisplayName(), validation.MaxFiles))
	}

	for _, file := range files {
		if !mimeTypeAllowed(validation.AllowedMimeTypes, file.MimeType) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s has an unsupported file type: %s", field.DisplayName(), file.MimeType))
		}
		if file.SizeBytes > validation.MaxFileSizeBytes {
			result.Errors = append(result.Errors, fmt.Sprintf("%s file %s exceeds the maximum size of %d bytes", field.DisplayName(), file.Filename, validation.MaxFileSizeBytes))
		}
	}

	if len(result.Errors) == errsBefore {
		result.Data[field.Name] = FieldValue{Kind: ValueKindFiles, Files: files}
	}
}

func optionExists(options []FieldOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func mimeTypeAllowed(allowed []string, mimeType string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func stringSlice(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			values = append(values, s)
		}
		return values, true
	}
	return nil, false
}

func fileDescriptors(raw any) ([]FileDescriptor, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, true
	case []FileDescriptor:
		return v, true
	case []any:
		files := make([]FileDescriptor, 0, len(v))
		for _, item := range v {
			record, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			size, ok := numericValue(record["size"])
			if !ok {
				return nil, false
			}
			filename, _ := record["filename"].(string)
			path, _ := record["path"].(string)
			mimeType, _ := record["mimeType"].(string)
			files = append(files, FileDescriptor{
				Filename:  filename,
				Path:      path,
				MimeType:  mimeType,
				SizeBytes: int64(size),
			})
		}
		return files, true
	}
	return nil, false
}
