package domain

import (
	"fmt"
	"time"
	"workforce-server/internal/infra/utils"
)

const _maxDutyTitleLength = 100

type Duty struct {
	ID            ID
	DepartmentID  ID
	Title         string
	Description   string
	Schema        FormSchema
	Priority      Priority
	EstimatedTime string
	Deadline      *utils.Time
	IsActive      bool
	Tags          []string
	CreatedBy     ID
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
}

func (d *Duty) Deactivate() {
	d.IsActive = false
	d.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewDutyBuilder() *dutyBuilder {
	return &dutyBuilder{}
}

type dutyBuilder struct {
	actions []dutyHandler
}

type dutyHandler func(d *Duty) error

func (b *dutyBuilder) WithTitle(value string) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Title = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithDescription(value string) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Description = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithDepartment(value ID) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.DepartmentID = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithSchema(value FormSchema) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Schema = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithPriority(value Priority) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Priority = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithEstimatedTime(value string) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.EstimatedTime = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithDeadline(value utils.Time) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Deadline = &value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithTags(value []string) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.Tags = value
		return nil
	})
	return b
}

func (b *dutyBuilder) WithCreatedBy(value ID) *dutyBuilder {
	b.actions = append(b.actions, func(d *Duty) error {
		d.CreatedBy = value
		return nil
	})
	return b
}

// Build assembles the duty and enforces every creation-time invariant:
// title bounds, department ownership, future deadline and schema
// well-formedness. Schema problems surface as a ValidationError so callers
// can show the full list.
func (b *dutyBuilder) Build() (Duty, error) {
	now := utils.Time{Time: time.Now()}
	result := Duty{
		ID:        ID(utils.GenerateUUID()),
		Priority:  PriorityMedium,
		IsActive:  true,
		Tags:      make([]string, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Duty{}, err
		}
	}

	var errs []string

	if result.Title == "" {
		errs = append(errs, "title is required")
	}
	if len(result.Title) > _maxDutyTitleLength {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", _maxDutyTitleLength))
	}
	if result.DepartmentID == "" {
		errs = append(errs, "department is required")
	}
	if !result.Priority.IsValid() {
		errs = append(errs, fmt.Sprintf("unknown priority '%s'", result.Priority))
	}
	if result.Deadline != nil && !result.Deadline.After(now.Time) {
		errs = append(errs, "deadline must be in the future")
	}

	if schemaErr := result.Schema.Validate(); schemaErr != nil {
		errs = append(errs, schemaErr.Errors...)
	}

	if len(errs) > 0 {
		return Duty{}, &ValidationError{Errors: errs}
	}

	return result, nil
}
