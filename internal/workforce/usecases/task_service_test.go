package usecases_test

import (
	"context"
	"testing"
	"time"
	"workforce-server/internal/infra/cache"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskServiceFixture struct {
	service         *usecases.SimpleTaskService
	taskLogs        *fakeTaskLogRepository
	users           *fakeUserRepository
	duties          *fakeDutyRepository
	departments     *fakeDepartmentRepository
	publisher       *fakeTaskEventPublisher
	employee        domain.User
	departmentAdmin domain.User
	globalAdmin     domain.User
	duty            domain.Duty
}

func newTaskServiceFixture(t *testing.T) *taskServiceFixture {
	t.Helper()
	ctx := context.Background()

	departments := newFakeDepartmentRepository()
	duties := newFakeDutyRepository()
	users := newFakeUserRepository()
	taskLogs := newFakeTaskLogRepository()
	publisher := &fakeTaskEventPublisher{}

	department, err := domain.NewDepartmentBuilder().
		WithName("Housekeeping").
		WithNotificationEmail("housekeeping@example.com").
		Build()
	require.NoError(t, err)
	require.NoError(t, departments.Create(ctx, department))

	duty, err := domain.NewDutyBuilder().
		WithTitle("Daily Report").
		WithDepartment(department.ID).
		WithSchema(domain.FormSchema{
			Fields: []domain.Field{
				{Name: "summary", Type: domain.FieldTypeTextarea, Label: "Summary", Required: true},
			},
		}).
		WithCreatedBy("admin-1").
		Build()
	require.NoError(t, err)
	require.NoError(t, duties.Create(ctx, duty))

	employee, err := domain.NewUserBuilder().
		WithName("Ana").
		WithEmail("ana@example.com").
		WithDepartment(department.ID).
		Build()
	require.NoError(t, err)
	employee.AssignDuty(duty.ID)
	require.NoError(t, users.Create(ctx, employee))

	departmentAdmin, err := domain.NewUserBuilder().
		WithName("Bruno").
		WithEmail("bruno@example.com").
		WithRole(domain.RoleAdmin).
		WithDepartment(department.ID).
		Build()
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, departmentAdmin))

	globalAdmin, err := domain.NewUserBuilder().
		WithName("Carla").
		WithEmail("carla@example.com").
		WithRole(domain.RoleAdmin).
		Build()
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, globalAdmin))

	schemaCache, err := cache.New(nil)
	require.NoError(t, err)

	dutyService := usecases.NewDutyService(duties, departments, schemaCache)
	service := usecases.NewTaskService(taskLogs, users, dutyService, publisher, time.UTC)

	return &taskServiceFixture{
		service:         service,
		taskLogs:        taskLogs,
		users:           users,
		duties:          duties,
		departments:     departments,
		publisher:       publisher,
		employee:        employee,
		departmentAdmin: departmentAdmin,
		globalAdmin:     globalAdmin,
		duty:            duty,
	}
}

func TestSubmitTaskLog(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"summary": "rooms 101-110 done"}

	t.Run("creates a new log and notifies admins", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		taskLog, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)

		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPending, taskLog.Status)
		assert.True(t, taskLog.AllowUpdates)
		assert.Equal(t, f.duty.DepartmentID, taskLog.DepartmentID)

		events := f.publisher.published()
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventKindNewTask, events[0].Kind)
		assert.Contains(t, events[0].Audiences, domain.DepartmentAdminsAudience(f.duty.DepartmentID))
		assert.Contains(t, events[0].Audiences, domain.GlobalAdminsAudience())
	})

	t.Run("same-day resubmission overwrites the open log", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		first, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		second, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID,
			map[string]any{"summary": "rooms 101-120 done"}, false)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "rooms 101-120 done", second.Data["summary"].Text)
		assert.True(t, second.SubmittedAt.After(first.SubmittedAt.Time))

		_, total, err := f.taskLogs.FindAllByEmployee(ctx, f.employee.ID, usecases.Pagination{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		events := f.publisher.published()
		require.Len(t, events, 2)
		assert.Equal(t, domain.EventKindTaskUpdated, events[1].Kind)
	})

	t.Run("approved log locks the same-day slot", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		first, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, f.globalAdmin.ID, first.ID, domain.TaskStatusApproved, "")
		require.NoError(t, err)

		_, err = f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)

		var lockedErr *usecases.LockedError
		require.ErrorAs(t, err, &lockedErr)
		assert.Equal(t, first.ID, lockedErr.TaskLogID)
	})

	t.Run("needs revision keeps the slot open for resubmission", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		first, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, f.globalAdmin.ID, first.ID, domain.TaskStatusNeedsRevision, "add hours")
		require.NoError(t, err)

		revised, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID,
			map[string]any{"summary": "rooms done, 8 hours"}, false)

		require.NoError(t, err)
		assert.Equal(t, first.ID, revised.ID)
		assert.Equal(t, domain.TaskStatusNeedsRevision, revised.Status)
		assert.Equal(t, "add hours", revised.Feedback)
		assert.True(t, revised.AllowUpdates)
	})

	t.Run("forceNew bypasses the same-day slot", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		first, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		second, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, true)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("locked branch does not shadow the open slot", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		first, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		branch, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, true)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, f.globalAdmin.ID, branch.ID, domain.TaskStatusApproved, "")
		require.NoError(t, err)

		updated, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID,
			map[string]any{"summary": "rooms 101-120 done"}, false)

		require.NoError(t, err)
		assert.Equal(t, first.ID, updated.ID)
		assert.Equal(t, "rooms 101-120 done", updated.Data["summary"].Text)
	})

	t.Run("rejects payloads that fail schema validation", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		_, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, map[string]any{}, false)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "Summary is required")
		assert.Empty(t, f.publisher.published())
	})

	t.Run("rejects unassigned duties", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		other, err := domain.NewUserBuilder().
			WithName("Dora").
			WithEmail("dora@example.com").
			Build()
		require.NoError(t, err)
		require.NoError(t, f.users.Create(ctx, other))

		_, err = f.service.SubmitTaskLog(ctx, other.ID, f.duty.ID, payload, false)
		assert.ErrorIs(t, err, usecases.ErrDutyNotAssigned)
	})

	t.Run("rejects inactive duties", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		duty := f.duty
		duty.Deactivate()
		require.NoError(t, f.duties.Update(ctx, duty))

		_, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		assert.ErrorIs(t, err, usecases.ErrDutyInactive)
	})

	t.Run("rejects unknown employees", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		_, err := f.service.SubmitTaskLog(ctx, "ghost", f.duty.ID, payload, false)
		assert.ErrorIs(t, err, usecases.ErrUserNotFound)
	})
}

func TestReviewTaskLog(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"summary": "rooms 101-110 done"}

	t.Run("records the decision and notifies employee and admins", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		taskLog, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		reviewed, err := f.service.ReviewTaskLog(ctx, f.departmentAdmin.ID, taskLog.ID, domain.TaskStatusApproved, "well done")

		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusApproved, reviewed.Status)
		assert.False(t, reviewed.AllowUpdates)
		assert.Equal(t, f.departmentAdmin.ID, reviewed.ReviewedBy)

		events := f.publisher.published()
		require.Len(t, events, 3)
		assert.Equal(t, domain.EventKindTaskStatusUpdated, events[1].Kind)
		assert.Equal(t, []domain.Audience{domain.EmployeeAudience(f.employee.ID)}, events[1].Audiences)
		assert.Equal(t, domain.EventKindTaskReviewed, events[2].Kind)
		assert.Contains(t, events[2].Audiences, domain.DepartmentAdminsAudience(f.duty.DepartmentID))
		assert.Contains(t, events[2].Audiences, domain.GlobalAdminsAudience())
	})

	t.Run("rejects employees as reviewers", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		taskLog, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, f.employee.ID, taskLog.ID, domain.TaskStatusApproved, "")
		assert.ErrorIs(t, err, usecases.ErrReviewNotAllowed)
	})

	t.Run("rejects admins from other departments", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		otherAdmin, err := domain.NewUserBuilder().
			WithName("Elena").
			WithEmail("elena@example.com").
			WithRole(domain.RoleAdmin).
			WithDepartment("other-department").
			Build()
		require.NoError(t, err)
		require.NoError(t, f.users.Create(ctx, otherAdmin))

		taskLog, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, otherAdmin.ID, taskLog.ID, domain.TaskStatusApproved, "")
		assert.ErrorIs(t, err, usecases.ErrReviewNotAllowed)
	})

	t.Run("rejects non review statuses", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		taskLog, err := f.service.SubmitTaskLog(ctx, f.employee.ID, f.duty.ID, payload, false)
		require.NoError(t, err)

		_, err = f.service.ReviewTaskLog(ctx, f.globalAdmin.ID, taskLog.ID, domain.TaskStatusPending, "")

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects unknown task logs", func(t *testing.T) {
		f := newTaskServiceFixture(t)

		_, err := f.service.ReviewTaskLog(ctx, f.globalAdmin.ID, "ghost", domain.TaskStatusApproved, "")
		assert.ErrorIs(t, err, usecases.ErrTaskLogNotFound)
	})
}
