package domain

import (
	"errors"
	"slices"
	"time"
	"workforce-server/internal/infra/utils"
)

type User struct {
	ID              ID
	Name            string
	Email           string
	Role            Role
	DepartmentID    ID
	Status          UserStatus
	LeaveUntil      *utils.Time
	AssignedDutyIDs []ID
	CreatedAt       utils.Time
	UpdatedAt       utils.Time
}

func (u *User) IsAssigned(dutyID ID) bool {
	return slices.Contains(u.AssignedDutyIDs, dutyID)
}

func (u *User) AssignDuty(dutyID ID) {
	if u.IsAssigned(dutyID) {
		return
	}
	u.AssignedDutyIDs = append(u.AssignedDutyIDs, dutyID)
	u.UpdatedAt = utils.Time{Time: time.Now()}
}

func (u *User) UnassignDuty(dutyID ID) {
	u.AssignedDutyIDs = slices.DeleteFunc(u.AssignedDutyIDs, func(id ID) bool {
		return id == dutyID
	})
	u.UpdatedAt = utils.Time{Time: time.Now()}
}

// BeginLeave puts the user on leave until the given instant.
func (u *User) BeginLeave(until utils.Time) {
	u.Status = UserStatusOnLeave
	u.LeaveUntil = &until
	u.UpdatedAt = utils.Time{Time: time.Now()}
}

// EndLeave returns the user to active status and clears the leave horizon.
func (u *User) EndLeave() {
	u.Status = UserStatusActive
	u.LeaveUntil = nil
	u.UpdatedAt = utils.Time{Time: time.Now()}
}

// LeaveExpired reports whether a scheduled leave has lapsed at the given instant.
func (u *User) LeaveExpired(at time.Time) bool {
	return u.Status == UserStatusOnLeave && u.LeaveUntil != nil && !u.LeaveUntil.After(at)
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(u *User) error

func (b *userBuilder) WithName(value string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Name = value
		return nil
	})
	return b
}

func (b *userBuilder) WithEmail(value string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Email = value
		return nil
	})
	return b
}

func (b *userBuilder) WithRole(value Role) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if value != RoleAdmin && value != RoleEmployee {
			return errors.New("unknown role")
		}
		u.Role = value
		return nil
	})
	return b
}

func (b *userBuilder) WithDepartment(value ID) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.DepartmentID = value
		return nil
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	now := utils.Time{Time: time.Now()}
	result := User{
		ID:              ID(utils.GenerateUUID()),
		Role:            RoleEmployee,
		Status:          UserStatusActive,
		AssignedDutyIDs: make([]ID, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return User{}, err
		}
	}

	if result.Name == "" {
		return User{}, errors.New("name is required")
	}
	if result.Email == "" {
		return User{}, errors.New("email is required")
	}

	return result, nil
}
