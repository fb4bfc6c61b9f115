package internal

import (
	"encoding/json"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type User struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	Name            string      `json:"name" gorm:"not null"`
	Email           string      `json:"email" gorm:"uniqueIndex;not null"`
	Role            string      `json:"role"`
	DepartmentID    string      `json:"department_id" gorm:"index"`
	Status          string      `json:"status"`
	LeaveUntil      *utils.Time `json:"leave_until"`
	AssignedDutyIDs string      `json:"assigned_duty_ids"` // JSON array of duty ids
	CreatedAt       utils.Time  `json:"created_at"`
	UpdatedAt       utils.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func FromUser(value domain.User) User {
	dutyIDs := make([]string, len(value.AssignedDutyIDs))
	for i, id := range value.AssignedDutyIDs {
		dutyIDs[i] = id.String()
	}
	dutyIDsJSON, _ := json.Marshal(dutyIDs)

	return User{
		ID:              value.ID.String(),
		Name:            value.Name,
		Email:           value.Email,
		Role:            string(value.Role),
		DepartmentID:    value.DepartmentID.String(),
		Status:          string(value.Status),
		LeaveUntil:      value.LeaveUntil,
		AssignedDutyIDs: string(dutyIDsJSON),
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
	}
}

func (u User) ToDomain() domain.User {
	var rawIDs []string
	json.Unmarshal([]byte(u.AssignedDutyIDs), &rawIDs)

	dutyIDs := make([]domain.ID, len(rawIDs))
	for i, id := range rawIDs {
		dutyIDs[i] = domain.ID(id)
	}

	return domain.User{
		ID:              domain.ID(u.ID),
		Name:            u.Name,
		Email:           u.Email,
		Role:            domain.Role(u.Role),
		DepartmentID:    domain.ID(u.DepartmentID),
		Status:          domain.UserStatus(u.Status),
		LeaveUntil:      u.LeaveUntil,
		AssignedDutyIDs: dutyIDs,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
