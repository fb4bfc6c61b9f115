package internal

import (
	"time"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type TaskLogSubmitRequest struct {
	Data     map[string]any `json:"data"`
	ForceNew bool           `json:"force_new"`
}

type TaskLogReviewRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type TaskLogResponse struct {
	ID           string         `json:"id"`
	DutyID       string         `json:"duty_id"`
	EmployeeID   string         `json:"employee_id"`
	DepartmentID string         `json:"department_id"`
	Data         map[string]any `json:"data"`
	Status       string         `json:"status"`
	AllowUpdates bool           `json:"allow_updates"`
	Feedback     string         `json:"feedback,omitempty"`
	ReviewedBy   string         `json:"reviewed_by,omitempty"`
	ReviewedAt   *utils.Time    `json:"reviewed_at,omitempty"`
	SubmittedAt  utils.Time     `json:"submitted_at"`
	UpdatedAt    utils.Time     `json:"updated_at"`
}

// FilePayload mirrors the keys clients send for file fields, so stored
// submissions render back the way they were submitted.
type FilePayload struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

func ToTaskLogResponse(taskLog domain.TaskLog) TaskLogResponse {
	return TaskLogResponse{
		ID:           taskLog.ID.String(),
		DutyID:       taskLog.DutyID.String(),
		EmployeeID:   taskLog.EmployeeID.String(),
		DepartmentID: taskLog.DepartmentID.String(),
		Data:         fromSubmissionData(taskLog.Data),
		Status:       string(taskLog.Status),
		AllowUpdates: taskLog.AllowUpdates,
		Feedback:     taskLog.Feedback,
		ReviewedBy:   taskLog.ReviewedBy.String(),
		ReviewedAt:   taskLog.ReviewedAt,
		SubmittedAt:  taskLog.SubmittedAt,
		UpdatedAt:    taskLog.UpdatedAt,
	}
}

func fromSubmissionData(data domain.SubmissionData) map[string]any {
	result := make(map[string]any, len(data))
	for name, value := range data {
		switch value.Kind {
		case domain.ValueKindNumber:
			result[name] = value.Number
		case domain.ValueKindList:
			result[name] = value.List
		case domain.ValueKindFiles:
			files := make([]FilePayload, len(value.Files))
			for i, file := range value.Files {
				files[i] = FilePayload{
					Filename: file.Filename,
					Path:     file.Path,
					MimeType: file.MimeType,
					Size:     file.SizeBytes,
				}
			}
			result[name] = files
		default:
			result[name] = value.Text
		}
	}

	return result
}

type TaskEventMessage struct {
	Type         string    `json:"type"`
	TaskLogID    string    `json:"task_log_id"`
	DutyID       string    `json:"duty_id"`
	DutyTitle    string    `json:"duty_title,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	DepartmentID string    `json:"department_id"`
	Status       string    `json:"status"`
	Feedback     string    `json:"feedback,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func ToTaskEventMessage(event domain.TaskEvent) TaskEventMessage {
	return TaskEventMessage{
		Type:         string(event.Kind),
		TaskLogID:    event.TaskLogID.String(),
		DutyID:       event.DutyID.String(),
		DutyTitle:    event.DutyTitle,
		EmployeeID:   event.EmployeeID.String(),
		EmployeeName: event.EmployeeName,
		DepartmentID: event.DepartmentID.String(),
		Status:       string(event.Status),
		Feedback:     event.Feedback,
		Timestamp:    event.OccurredAt.Time,
	}
}
