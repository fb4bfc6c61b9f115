package domain_test

import (
	"strings"
	"testing"
	"time"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() domain.FormSchema {
	return domain.FormSchema{
		Title: "Daily Report",
		Fields: []domain.Field{
			{Name: "summary", Type: domain.FieldTypeTextarea, Required: true},
		},
	}
}

func TestDutyBuilder(t *testing.T) {
	t.Run("builds an active duty with defaults", func(t *testing.T) {
		duty, err := domain.NewDutyBuilder().
			WithTitle("Daily Report").
			WithDepartment("department-1").
			WithSchema(validSchema()).
			WithCreatedBy("admin-1").
			Build()

		require.NoError(t, err)
		assert.NotEmpty(t, duty.ID)
		assert.True(t, duty.IsActive)
		assert.Equal(t, domain.PriorityMedium, duty.Priority)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		_, err := domain.NewDutyBuilder().
			WithDepartment("department-1").
			WithSchema(validSchema()).
			Build()

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "title is required")
	})

	t.Run("rejects titles over 100 characters", func(t *testing.T) {
		_, err := domain.NewDutyBuilder().
			WithTitle(strings.Repeat("x", 101)).
			WithDepartment("department-1").
			WithSchema(validSchema()).
			Build()

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "title must be at most 100 characters")
	})

	t.Run("rejects a past deadline", func(t *testing.T) {
		_, err := domain.NewDutyBuilder().
			WithTitle("Daily Report").
			WithDepartment("department-1").
			WithSchema(validSchema()).
			WithDeadline(utils.Time{Time: time.Now().Add(-time.Hour)}).
			Build()

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "deadline must be in the future")
	})

	t.Run("surfaces schema problems", func(t *testing.T) {
		_, err := domain.NewDutyBuilder().
			WithTitle("Daily Report").
			WithDepartment("department-1").
			WithSchema(domain.FormSchema{}).
			Build()

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "schema must declare at least one field")
	})
}

func TestDepartmentAppendDuty(t *testing.T) {
	department, err := domain.NewDepartmentBuilder().
		WithName("Housekeeping").
		Build()
	require.NoError(t, err)

	department.AppendDuty("duty-1")
	department.AppendDuty("duty-1")
	department.AppendDuty("duty-2")

	assert.Equal(t, []domain.ID{"duty-1", "duty-2"}, department.DutyIDs)
}

func TestUserLeave(t *testing.T) {
	t.Run("begin and end leave", func(t *testing.T) {
		user, err := domain.NewUserBuilder().
			WithName("Ana").
			WithEmail("ana@example.com").
			Build()
		require.NoError(t, err)

		until := utils.Time{Time: time.Now().Add(48 * time.Hour)}
		user.BeginLeave(until)
		assert.Equal(t, domain.UserStatusOnLeave, user.Status)
		require.NotNil(t, user.LeaveUntil)

		user.EndLeave()
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.Nil(t, user.LeaveUntil)
	})

	t.Run("leave expiry", func(t *testing.T) {
		user, err := domain.NewUserBuilder().
			WithName("Ana").
			WithEmail("ana@example.com").
			Build()
		require.NoError(t, err)

		user.BeginLeave(utils.Time{Time: time.Now().Add(-time.Minute)})
		assert.True(t, user.LeaveExpired(time.Now()))

		user.BeginLeave(utils.Time{Time: time.Now().Add(time.Hour)})
		assert.False(t, user.LeaveExpired(time.Now()))
	})
}

func TestUserDutyAssignment(t *testing.T) {
	user, err := domain.NewUserBuilder().
		WithName("Ana").
		WithEmail("ana@example.com").
		WithDepartment("department-1").
		Build()
	require.NoError(t, err)

	user.AssignDuty("duty-1")
	user.AssignDuty("duty-1")
	assert.True(t, user.IsAssigned("duty-1"))
	assert.Len(t, user.AssignedDutyIDs, 1)

	user.UnassignDuty("duty-1")
	assert.False(t, user.IsAssigned("duty-1"))
}
