package internal

import (
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type UserCreateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
}

type UserResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Role            string      `json:"role"`
	DepartmentID    string      `json:"department_id,omitempty"`
	Status          string      `json:"status"`
	LeaveUntil      *utils.Time `json:"leave_until,omitempty"`
	AssignedDutyIDs []string    `json:"assigned_duty_ids"`
	CreatedAt       utils.Time  `json:"created_at"`
	UpdatedAt       utils.Time  `json:"updated_at"`
}

func ToUserResponse(user domain.User) UserResponse {
	dutyIDs := make([]string, len(user.AssignedDutyIDs))
	for i, id := range user.AssignedDutyIDs {
		dutyIDs[i] = id.String()
	}

	return UserResponse{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		DepartmentID:    user.DepartmentID.String(),
		Status:          string(user.Status),
		LeaveUntil:      user.LeaveUntil,
		AssignedDutyIDs: dutyIDs,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

type DutyAssignmentRequest struct {
	DutyID string `json:"duty_id"`
}

type LeaveRequest struct {
	Until utils.Time `json:"until"`
}
