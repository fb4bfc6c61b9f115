package internal

import (
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type DutyCreateRequest struct {
	DepartmentID  string      `json:"department_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Schema        FormSchema  `json:"schema"`
	Priority      string      `json:"priority"`
	EstimatedTime string      `json:"estimated_time"`
	Deadline      *utils.Time `json:"deadline"`
	Tags          []string    `json:"tags"`
}

type DutyResponse struct {
	ID            string      `json:"id"`
	DepartmentID  string      `json:"department_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Schema        FormSchema  `json:"schema"`
	Priority      string      `json:"priority"`
	EstimatedTime string      `json:"estimated_time,omitempty"`
	Deadline      *utils.Time `json:"deadline,omitempty"`
	IsActive      bool        `json:"is_active"`
	Tags          []string    `json:"tags"`
	CreatedBy     string      `json:"created_by,omitempty"`
	CreatedAt     utils.Time  `json:"created_at"`
	UpdatedAt     utils.Time  `json:"updated_at"`
}

func ToDutyResponse(duty domain.Duty) DutyResponse {
	return DutyResponse{
		ID:            duty.ID.String(),
		DepartmentID:  duty.DepartmentID.String(),
		Title:         duty.Title,
		Description:   duty.Description,
		Schema:        FromFormSchema(duty.Schema),
		Priority:      string(duty.Priority),
		EstimatedTime: duty.EstimatedTime,
		Deadline:      duty.Deadline,
		IsActive:      duty.IsActive,
		Tags:          duty.Tags,
		CreatedBy:     duty.CreatedBy.String(),
		CreatedAt:     duty.CreatedAt,
		UpdatedAt:     duty.UpdatedAt,
	}
}

type SubmissionValidateRequest struct {
	Data map[string]any `json:"data"`
}

type SubmissionValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
