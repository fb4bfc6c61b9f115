package internal

import (
	"encoding/json"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type Department struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	Name              string     `json:"name" gorm:"uniqueIndex;not null"`
	Description       string     `json:"description"`
	NotificationEmail string     `json:"notification_email"`
	DutyIDs           string     `json:"duty_ids"` // JSON array of duty ids
	CreatedAt         utils.Time `json:"created_at"`
	UpdatedAt         utils.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

func FromDepartment(value domain.Department) Department {
	dutyIDs := make([]string, len(value.DutyIDs))
	for i, id := range value.DutyIDs {
		dutyIDs[i] = id.String()
	}
	dutyIDsJSON, _ := json.Marshal(dutyIDs)

	return Department{
		ID:                value.ID.String(),
		Name:              value.Name,
		Description:       value.Description,
		NotificationEmail: value.NotificationEmail,
		DutyIDs:           string(dutyIDsJSON),
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}

func (d Department) ToDomain() domain.Department {
	var rawIDs []string
	json.Unmarshal([]byte(d.DutyIDs), &rawIDs)

	dutyIDs := make([]domain.ID, len(rawIDs))
	for i, id := range rawIDs {
		dutyIDs[i] = domain.ID(id)
	}

	return domain.Department{
		ID:                domain.ID(d.ID),
		Name:              d.Name,
		Description:       d.Description,
		NotificationEmail: d.NotificationEmail,
		DutyIDs:           dutyIDs,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
