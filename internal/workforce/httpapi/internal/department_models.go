package internal

import (
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type DepartmentCreateRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	NotificationEmail string `json:"notification_email"`
}

type DepartmentUpdateRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	NotificationEmail string `json:"notification_email"`
}

type DepartmentResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	NotificationEmail string     `json:"notification_email,omitempty"`
	DutyIDs           []string   `json:"duty_ids"`
	CreatedAt         utils.Time `json:"created_at"`
	UpdatedAt         utils.Time `json:"updated_at"`
}

func ToDepartmentResponse(department domain.Department) DepartmentResponse {
	dutyIDs := make([]string, len(department.DutyIDs))
	for i, id := range department.DutyIDs {
		dutyIDs[i] = id.String()
	}

	return DepartmentResponse{
		ID:                department.ID.String(),
		Name:              department.Name,
		Description:       department.Description,
		NotificationEmail: department.NotificationEmail,
		DutyIDs:           dutyIDs,
		CreatedAt:         department.CreatedAt,
		UpdatedAt:         department.UpdatedAt,
	}
}
