package domain

import (
	"fmt"
	"workforce-server/internal/infra/utils"
)

type EventKind string

const (
	EventKindNewTask           EventKind = "new-task"
	EventKindTaskUpdated       EventKind = "task-updated"
	EventKindTaskReviewed      EventKind = "task-reviewed"
	EventKindTaskStatusUpdated EventKind = "task-status-updated"
)

// Audience addresses a set of connected clients. Employees get their own
// channel, department admins share one per department, and global admins
// share a single channel.
type Audience string

func EmployeeAudience(employeeID ID) Audience {
	return Audience(fmt.Sprintf("employee:%s", employeeID))
}

func DepartmentAdminsAudience(departmentID ID) Audience {
	return Audience(fmt.Sprintf("admin-department:%s", departmentID))
}

func GlobalAdminsAudience() Audience {
	return Audience("admin-global")
}

type TaskEvent struct {
	Kind         EventKind
	Audiences    []Audience
	TaskLogID    ID
	DutyID       ID
	DutyTitle    string
	EmployeeID   ID
	EmployeeName string
	DepartmentID ID
	Status       TaskStatus
	Feedback     string
	OccurredAt   utils.Time
}

func adminAudiences(departmentID ID) []Audience {
	return []Audience{
		DepartmentAdminsAudience(departmentID),
		GlobalAdminsAudience(),
	}
}

// NewTaskSubmittedEvent notifies admins that an employee filed a new log.
func NewTaskSubmittedEvent(taskLog TaskLog, duty Duty, employee User) TaskEvent {
	return TaskEvent{
		Kind:         EventKindNewTask,
		Audiences:    adminAudiences(taskLog.DepartmentID),
		TaskLogID:    taskLog.ID,
		DutyID:       duty.ID,
		DutyTitle:    duty.Title,
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		DepartmentID: taskLog.DepartmentID,
		Status:       taskLog.Status,
		OccurredAt:   taskLog.SubmittedAt,
	}
}

// NewTaskUpdatedEvent notifies admins that an existing log was overwritten.
func NewTaskUpdatedEvent(taskLog TaskLog, duty Duty, employee User) TaskEvent {
	return TaskEvent{
		Kind:         EventKindTaskUpdated,
		Audiences:    adminAudiences(taskLog.DepartmentID),
		TaskLogID:    taskLog.ID,
		DutyID:       duty.ID,
		DutyTitle:    duty.Title,
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		DepartmentID: taskLog.DepartmentID,
		Status:       taskLog.Status,
		OccurredAt:   taskLog.UpdatedAt,
	}
}

// NewReviewEvents produces the two notifications a review triggers: a
// task-status-updated for the submitting employee and a task-reviewed for the
// admin channels.
func NewReviewEvents(taskLog TaskLog, duty Duty, employee User) []TaskEvent {
	occurredAt := taskLog.UpdatedAt
	if taskLog.ReviewedAt != nil {
		occurredAt = *taskLog.ReviewedAt
	}

	employeeEvent := TaskEvent{
		Kind:         EventKindTaskStatusUpdated,
		Audiences:    []Audience{EmployeeAudience(employee.ID)},
		TaskLogID:    taskLog.ID,
		DutyID:       duty.ID,
		DutyTitle:    duty.Title,
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		DepartmentID: taskLog.DepartmentID,
		Status:       taskLog.Status,
		Feedback:     taskLog.Feedback,
		OccurredAt:   occurredAt,
	}

	adminEvent := employeeEvent
	adminEvent.Kind = EventKindTaskReviewed
	adminEvent.Audiences = adminAudiences(taskLog.DepartmentID)

	return []TaskEvent{employeeEvent, adminEvent}
}
