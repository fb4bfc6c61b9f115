package internal

import (
	"encoding/json"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type TaskLog struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	DutyID       string      `json:"duty_id" gorm:"index;not null"`
	EmployeeID   string      `json:"employee_id" gorm:"index;not null"`
	DepartmentID string      `json:"department_id" gorm:"index"`
	Data         string      `json:"data"` // JSON map of validated field values
	Status       string      `json:"status"`
	AllowUpdates bool        `json:"allow_updates"`
	Feedback     string      `json:"feedback"`
	ReviewedBy   string      `json:"reviewed_by"`
	ReviewedAt   *utils.Time `json:"reviewed_at"`
	SubmittedAt  utils.Time  `json:"submitted_at" gorm:"index"`
	UpdatedAt    utils.Time  `json:"updated_at"`
}

func (TaskLog) TableName() string {
	return "task_logs"
}

type fieldValueData struct {
	Kind   string               `json:"kind"`
	Text   string               `json:"text,omitempty"`
	Number float64              `json:"number,omitempty"`
	List   []string             `json:"list,omitempty"`
	Files  []fileDescriptorData `json:"files,omitempty"`
}

type fileDescriptorData struct {
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

func FromTaskLog(value domain.TaskLog) TaskLog {
	data := make(map[string]fieldValueData, len(value.Data))
	for name, fieldValue := range value.Data {
		entry := fieldValueData{
			Kind:   string(fieldValue.Kind),
			Text:   fieldValue.Text,
			Number: fieldValue.Number,
			List:   fieldValue.List,
		}
		for _, file := range fieldValue.Files {
			entry.Files = append(entry.Files, fileDescriptorData{
				Filename:  file.Filename,
				Path:      file.Path,
				MimeType:  file.MimeType,
				SizeBytes: file.SizeBytes,
			})
		}
		data[name] = entry
	}
	dataJSON, _ := json.Marshal(data)

	return TaskLog{
		ID:           value.ID.String(),
		DutyID:       value.DutyID.String(),
		EmployeeID:   value.EmployeeID.String(),
		DepartmentID: value.DepartmentID.String(),
		Data:         string(dataJSON),
		Status:       string(value.Status),
		AllowUpdates: value.AllowUpdates,
		Feedback:     value.Feedback,
		ReviewedBy:   value.ReviewedBy.String(),
		ReviewedAt:   value.ReviewedAt,
		SubmittedAt:  value.SubmittedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}

func (t TaskLog) ToDomain() domain.TaskLog {
	var data map[string]fieldValueData
	json.Unmarshal([]byte(t.Data), &data)

	submissionData := make(domain.SubmissionData, len(data))
	for name, entry := range data {
		fieldValue := domain.FieldValue{
			Kind:   domain.ValueKind(entry.Kind),
			Text:   entry.Text,
			Number: entry.Number,
			List:   entry.List,
		}
		for _, file := range entry.Files {
			fieldValue.Files = append(fieldValue.Files, domain.FileDescriptor{
				Filename:  file.Filename,
				Path:      file.Path,
				MimeType:  file.MimeType,
				SizeBytes: file.SizeBytes,
			})
		}
		submissionData[name] = fieldValue
	}

	return domain.TaskLog{
		ID:           domain.ID(t.ID),
		DutyID:       domain.ID(t.DutyID),
		EmployeeID:   domain.ID(t.EmployeeID),
		DepartmentID: domain.ID(t.DepartmentID),
		Data:         submissionData,
		Status:       domain.TaskStatus(t.Status),
		AllowUpdates: t.AllowUpdates,
		Feedback:     t.Feedback,
		ReviewedBy:   domain.ID(t.ReviewedBy),
		ReviewedAt:   t.ReviewedAt,
		SubmittedAt:  t.SubmittedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
