package internal

import (
	"encoding/json"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type Duty struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	DepartmentID  string      `json:"department_id" gorm:"index;not null"`
	Title         string      `json:"title" gorm:"not null"`
	Description   string      `json:"description"`
	Schema        string      `json:"schema"` // JSON form schema
	Priority      string      `json:"priority"`
	EstimatedTime string      `json:"estimated_time"`
	Deadline      *utils.Time `json:"deadline"`
	IsActive      bool        `json:"is_active" gorm:"default:true"`
	Tags          string      `json:"tags"` // JSON array of tags
	CreatedBy     string      `json:"created_by"`
	CreatedAt     utils.Time  `json:"created_at"`
	UpdatedAt     utils.Time  `json:"updated_at"`
}

func (Duty) TableName() string {
	return "duties"
}

func FromDuty(value domain.Duty) Duty {
	tagsJSON, _ := json.Marshal(value.Tags)

	return Duty{
		ID:            value.ID.String(),
		DepartmentID:  value.DepartmentID.String(),
		Title:         value.Title,
		Description:   value.Description,
		Schema:        MarshalFormSchema(value.Schema),
		Priority:      string(value.Priority),
		EstimatedTime: value.EstimatedTime,
		Deadline:      value.Deadline,
		IsActive:      value.IsActive,
		Tags:          string(tagsJSON),
		CreatedBy:     value.CreatedBy.String(),
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}

func (d Duty) ToDomain() domain.Duty {
	var tags []string
	json.Unmarshal([]byte(d.Tags), &tags)

	return domain.Duty{
		ID:            domain.ID(d.ID),
		DepartmentID:  domain.ID(d.DepartmentID),
		Title:         d.Title,
		Description:   d.Description,
		Schema:        UnmarshalFormSchema(d.Schema),
		Priority:      domain.Priority(d.Priority),
		EstimatedTime: d.EstimatedTime,
		Deadline:      d.Deadline,
		IsActive:      d.IsActive,
		Tags:          tags,
		CreatedBy:     domain.ID(d.CreatedBy),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
