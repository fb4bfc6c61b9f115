package domain

import (
	"errors"
	"slices"
	"time"
	"workforce-server/internal/infra/utils"
)

type Department struct {
	ID                ID
	Name              string
	Description       string
	NotificationEmail string
	DutyIDs           []ID
	CreatedAt         utils.Time
	UpdatedAt         utils.Time
}

// AppendDuty records a duty under this department. Appending an id twice is
// a no-op so retried duty creations stay idempotent.
func (d *Department) AppendDuty(dutyID ID) {
	if slices.Contains(d.DutyIDs, dutyID) {
		return
	}
	d.DutyIDs = append(d.DutyIDs, dutyID)
	d.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewDepartmentBuilder() *departmentBuilder {
	return &departmentBuilder{}
}

type departmentBuilder struct {
	actions []departmentHandler
}

type departmentHandler func(d *Department) error

func (b *departmentBuilder) WithName(value string) *departmentBuilder {
	b.actions = append(b.actions, func(d *Department) error {
		d.Name = value
		return nil
	})
	return b
}

func (b *departmentBuilder) WithDescription(value string) *departmentBuilder {
	b.actions = append(b.actions, func(d *Department) error {
		d.Description = value
		return nil
	})
	return b
}

func (b *departmentBuilder) WithNotificationEmail(value string) *departmentBuilder {
	b.actions = append(b.actions, func(d *Department) error {
		d.NotificationEmail = value
		return nil
	})
	return b
}

func (b *departmentBuilder) Build() (Department, error) {
	now := utils.Time{Time: time.Now()}
	result := Department{
		ID:        ID(utils.GenerateUUID()),
		DutyIDs:   make([]ID, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Department{}, err
		}
	}

	if result.Name == "" {
		return Department{}, errors.New("name is required")
	}

	return result, nil
}
