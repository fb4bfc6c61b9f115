package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"
	"workforce-server/internal/workforce/domain"
)

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentDuplicated = errors.New("department already exists")
	ErrDutyNotFound         = errors.New("duty not found")
	ErrDutyDuplicated       = errors.New("duty already exists")
	ErrDutyInactive         = errors.New("duty is inactive")
	ErrDutyInconsistent     = errors.New("duty is not listed under its department")
	ErrDutyNotAssigned      = errors.New("duty is not assigned to the employee")
	ErrTaskLogNotFound      = errors.New("task log not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserDuplicated       = errors.New("user already exists")
	ErrReviewNotAllowed     = errors.New("review not allowed")
)

// LockedError signals that a same-day submission slot is already taken by a
// reviewed log that no longer accepts updates.
type LockedError struct {
	TaskLogID domain.ID
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("task log %s is locked for updates", e.TaskLogID)
}

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type DepartmentRepository interface {
	Create(ctx context.Context, department domain.Department) error
	GetByID(ctx context.Context, id domain.ID) (domain.Department, error)
	GetByName(ctx context.Context, name string) (domain.Department, error)
	Update(ctx context.Context, department domain.Department) error
	FindAll(ctx context.Context, pagination Pagination) ([]domain.Department, int, error)
	// Delete removes the department and hard-deletes its duties in one
	// transaction. Task logs referencing those duties stay untouched.
	Delete(ctx context.Context, id domain.ID) error
}

type DutyRepository interface {
	// Create persists the duty and registers it under its department in one
	// transaction.
	Create(ctx context.Context, duty domain.Duty) error
	GetByID(ctx context.Context, id domain.ID) (domain.Duty, error)
	GetByDepartmentAndTitle(ctx context.Context, departmentID domain.ID, title string) (domain.Duty, error)
	Update(ctx context.Context, duty domain.Duty) error
	FindAll(ctx context.Context, pagination Pagination) ([]domain.Duty, int, error)
	FindAllByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.Duty, int, error)
}

type TaskLogRepository interface {
	Create(ctx context.Context, taskLog domain.TaskLog) error
	Update(ctx context.Context, taskLog domain.TaskLog) error
	GetByID(ctx context.Context, id domain.ID) (domain.TaskLog, error)
	// FindLatestInWindow returns the most recent log the employee filed for
	// the duty inside [start, end), regardless of lock state.
	FindLatestInWindow(ctx context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error)
	// FindOpenInWindow returns the most recent log inside [start, end) that is
	// still open for updates.
	FindOpenInWindow(ctx context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error)
	FindAll(ctx context.Context, pagination Pagination) ([]domain.TaskLog, int, error)
	FindAllByEmployee(ctx context.Context, employeeID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
	FindAllByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
	FindAllByDuty(ctx context.Context, dutyID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id domain.ID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
	FindAll(ctx context.Context, pagination Pagination) ([]domain.User, int, error)
	FindAllOnLeave(ctx context.Context) ([]domain.User, error)
}
