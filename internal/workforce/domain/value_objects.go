package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusOnLeave UserStatus = "on_leave"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending       TaskStatus = "pending"
	TaskStatusApproved      TaskStatus = "approved"
	TaskStatusRejected      TaskStatus = "rejected"
	TaskStatusNeedsRevision TaskStatus = "needs_revision"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusApproved, TaskStatusRejected, TaskStatusNeedsRevision:
		return true
	}
	return false
}

// IsReviewDecision reports whether s is a status an admin may set during review.
func (s TaskStatus) IsReviewDecision() bool {
	switch s {
	case TaskStatusApproved, TaskStatusRejected, TaskStatusNeedsRevision:
		return true
	}
	return false
}
