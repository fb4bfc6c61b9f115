package domain

import (
	"errors"
	"time"
	"workforce-server/internal/infra/utils"
)

// TaskLog is one employee submission against a duty. At most one log exists
// per employee, duty and calendar day unless the employee explicitly forces a
// new entry.
type TaskLog struct {
	ID           ID
	DutyID       ID
	EmployeeID   ID
	DepartmentID ID
	Data         SubmissionData
	Status       TaskStatus
	AllowUpdates bool
	Feedback     string
	ReviewedBy   ID
	ReviewedAt   *utils.Time
	SubmittedAt  utils.Time
	UpdatedAt    utils.Time
}

// Overwrite replaces the submission payload in place and bumps the submission
// time. The log must still be open for updates. Status and the review trail
// stay as they are: a needs_revision log returns to review carrying its
// feedback.
func (t *TaskLog) Overwrite(data SubmissionData, at utils.Time) error {
	if !t.AllowUpdates {
		return errors.New("task log is locked")
	}
	t.Data = data
	t.SubmittedAt = at
	t.UpdatedAt = at
	return nil
}

// ApplyReview records the admin decision. Only needs_revision reopens the log
// for employee updates; approved and rejected lock it.
func (t *TaskLog) ApplyReview(status TaskStatus, reviewer ID, feedback string, at utils.Time) error {
	if !status.IsReviewDecision() {
		return errors.New("status is not a review decision")
	}
	t.Status = status
	t.Feedback = feedback
	t.ReviewedBy = reviewer
	t.ReviewedAt = &at
	t.AllowUpdates = status == TaskStatusNeedsRevision
	t.UpdatedAt = at
	return nil
}

func NewTaskLogBuilder() *taskLogBuilder {
	return &taskLogBuilder{}
}

type taskLogBuilder struct {
	actions []taskLogHandler
}

type taskLogHandler func(t *TaskLog) error

func (b *taskLogBuilder) WithDuty(value ID) *taskLogBuilder {
	b.actions = append(b.actions, func(t *TaskLog) error {
		t.DutyID = value
		return nil
	})
	return b
}

func (b *taskLogBuilder) WithEmployee(value ID) *taskLogBuilder {
	b.actions = append(b.actions, func(t *TaskLog) error {
		t.EmployeeID = value
		return nil
	})
	return b
}

func (b *taskLogBuilder) WithDepartment(value ID) *taskLogBuilder {
	b.actions = append(b.actions, func(t *TaskLog) error {
		t.DepartmentID = value
		return nil
	})
	return b
}

func (b *taskLogBuilder) WithData(value SubmissionData) *taskLogBuilder {
	b.actions = append(b.actions, func(t *TaskLog) error {
		t.Data = value
		return nil
	})
	return b
}

func (b *taskLogBuilder) WithSubmittedAt(value utils.Time) *taskLogBuilder {
	b.actions = append(b.actions, func(t *TaskLog) error {
		t.SubmittedAt = value
		t.UpdatedAt = value
		return nil
	})
	return b
}

func (b *taskLogBuilder) Build() (TaskLog, error) {
	now := utils.Time{Time: time.Now()}
	result := TaskLog{
		ID:           ID(utils.GenerateUUID()),
		Status:       TaskStatusPending,
		AllowUpdates: true,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return TaskLog{}, err
		}
	}

	if result.DutyID == "" {
		return TaskLog{}, errors.New("duty is required")
	}
	if result.EmployeeID == "" {
		return TaskLog{}, errors.New("employee is required")
	}
	if result.Data == nil {
		return TaskLog{}, errors.New("data is required")
	}

	return result, nil
}
