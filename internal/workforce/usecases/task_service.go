package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type TaskService interface {
	// SubmitTaskLog validates payload against the duty's schema and fills the
	// employee's submission slot for the current day: it updates the existing
	// same-day log when one is open, fails with a LockedError when the slot is
	// locked, and creates a new log otherwise. forceNew skips the same-day
	// lookup entirely.
	SubmitTaskLog(ctx context.Context, employeeID, dutyID domain.ID, payload map[string]any, forceNew bool) (domain.TaskLog, error)
	ReviewTaskLog(ctx context.Context, reviewerID, taskLogID domain.ID, status domain.TaskStatus, feedback string) (domain.TaskLog, error)
	GetTaskLog(ctx context.Context, id domain.ID) (domain.TaskLog, error)
	ListTaskLogs(ctx context.Context, pagination Pagination) ([]domain.TaskLog, int, error)
	ListTaskLogsByEmployee(ctx context.Context, employeeID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
	ListTaskLogsByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
	ListTaskLogsByDuty(ctx context.Context, dutyID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error)
}

func NewTaskService(
	repository TaskLogRepository,
	userRepository UserRepository,
	dutyService DutyService,
	publisher TaskEventPublisher,
	location *time.Location,
) *SimpleTaskService {
	if location == nil {
		location = time.UTC
	}
	return &SimpleTaskService{
		repository:     repository,
		userRepository: userRepository,
		dutyService:    dutyService,
		publisher:      publisher,
		location:       location,
		slotLocks:      make(map[string]*slotLock),
	}
}

var _ TaskService = (*SimpleTaskService)(nil)

type SimpleTaskService struct {
	repository     TaskLogRepository
	userRepository UserRepository
	dutyService    DutyService
	publisher      TaskEventPublisher
	location       *time.Location

	// slotLocks serializes submissions per (employee, duty, day) so two
	// concurrent requests cannot both create a log for the same slot. Entries
	// are reference counted and removed once the last holder releases.
	slotMu    sync.Mutex
	slotLocks map[string]*slotLock
}

type slotLock struct {
	mu   sync.Mutex
	refs int
}

func (s *SimpleTaskService) SubmitTaskLog(ctx context.Context, employeeID, dutyID domain.ID, payload map[string]any, forceNew bool) (domain.TaskLog, error) {
	employee, err := s.userRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.TaskLog{}, ErrUserNotFound
		}
		slog.Error("getting employee", slog.String("error", err.Error()))
		return domain.TaskLog{}, fmt.Errorf("getting employee: %w", err)
	}

	if !employee.IsAssigned(dutyID) {
		slog.Warn("duty not assigned",
			slog.String("employee_id", employeeID.String()),
			slog.String("duty_id", dutyID.String()))
		return domain.TaskLog{}, ErrDutyNotAssigned
	}

	duty, err := s.dutyService.GetDuty(ctx, dutyID)
	if err != nil {
		return domain.TaskLog{}, err
	}

	if !duty.IsActive {
		return domain.TaskLog{}, ErrDutyInactive
	}

	result := domain.ValidateSubmission(duty.Schema, payload)
	if !result.Valid {
		return domain.TaskLog{}, domain.NewValidationError(result.Errors...)
	}

	now := time.Now()
	start, end := utils.DayWindow(now, s.location)

	unlock := s.lockSlot(employeeID, dutyID, start)
	defer unlock()

	if !forceNew {
		open, err := s.repository.FindOpenInWindow(ctx, employeeID, dutyID, start, end)
		if err != nil && !errors.Is(err, ErrTaskLogNotFound) {
			slog.Error("finding open same-day task log", slog.String("error", err.Error()))
			return domain.TaskLog{}, fmt.Errorf("finding open same-day task log: %w", err)
		}
		if err == nil {
			return s.overwriteTaskLog(ctx, open, result.Data, duty, employee, now)
		}

		// no open log; any remaining same-day log is locked
		locked, err := s.repository.FindLatestInWindow(ctx, employeeID, dutyID, start, end)
		if err != nil && !errors.Is(err, ErrTaskLogNotFound) {
			slog.Error("finding same-day task log", slog.String("error", err.Error()))
			return domain.TaskLog{}, fmt.Errorf("finding same-day task log: %w", err)
		}
		if err == nil {
			return domain.TaskLog{}, &LockedError{TaskLogID: locked.ID}
		}
	}

	taskLog, err := domain.NewTaskLogBuilder().
		WithDuty(dutyID).
		WithEmployee(employeeID).
		WithDepartment(duty.DepartmentID).
		WithData(result.Data).
		WithSubmittedAt(utils.Time{Time: now}).
		Build()
	if err != nil {
		return domain.TaskLog{}, fmt.Errorf("building task log: %w", err)
	}

	err = s.repository.Create(ctx, taskLog)
	if err != nil {
		slog.Error("creating task log", slog.String("error", err.Error()))
		return domain.TaskLog{}, fmt.Errorf("creating task log: %w", err)
	}

	slog.Info("task log created successfully",
		slog.String("id", taskLog.ID.String()),
		slog.String("employee_id", employeeID.String()),
		slog.String("duty_id", dutyID.String()))

	s.publishEvents(ctx, domain.NewTaskSubmittedEvent(taskLog, duty, employee))

	return taskLog, nil
}

func (s *SimpleTaskService) overwriteTaskLog(
	ctx context.Context,
	taskLog domain.TaskLog,
	data domain.SubmissionData,
	duty domain.Duty,
	employee domain.User,
	now time.Time,
) (domain.TaskLog, error) {
	err := taskLog.Overwrite(data, utils.Time{Time: now})
	if err != nil {
		return domain.TaskLog{}, &LockedError{TaskLogID: taskLog.ID}
	}

	err = s.repository.Update(ctx, taskLog)
	if err != nil {
		slog.Error("updating task log", slog.String("error", err.Error()))
		return domain.TaskLog{}, fmt.Errorf("updating task log: %w", err)
	}

	slog.Info("task log updated successfully",
		slog.String("id", taskLog.ID.String()),
		slog.String("employee_id", employee.ID.String()))

	s.publishEvents(ctx, domain.NewTaskUpdatedEvent(taskLog, duty, employee))

	return taskLog, nil
}

func (s *SimpleTaskService) ReviewTaskLog(ctx context.Context, reviewerID, taskLogID domain.ID, status domain.TaskStatus, feedback string) (domain.TaskLog, error) {
	if !status.IsReviewDecision() {
		return domain.TaskLog{}, domain.NewValidationError(fmt.Sprintf("status '%s' is not a review decision", status))
	}

	reviewer, err := s.userRepository.GetByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.TaskLog{}, ErrUserNotFound
		}
		return domain.TaskLog{}, fmt.Errorf("getting reviewer: %w", err)
	}

	taskLog, err := s.repository.GetByID(ctx, taskLogID)
	if err != nil {
		if errors.Is(err, ErrTaskLogNotFound) {
			return domain.TaskLog{}, ErrTaskLogNotFound
		}
		return domain.TaskLog{}, fmt.Errorf("getting task log: %w", err)
	}

	if !s.canReview(reviewer, taskLog) {
		slog.Warn("review not allowed",
			slog.String("reviewer_id", reviewerID.String()),
			slog.String("task_log_id", taskLogID.String()))
		return domain.TaskLog{}, ErrReviewNotAllowed
	}

	err = taskLog.ApplyReview(status, reviewerID, feedback, utils.Time{Time: time.Now()})
	if err != nil {
		return domain.TaskLog{}, domain.NewValidationError(err.Error())
	}

	err = s.repository.Update(ctx, taskLog)
	if err != nil {
		slog.Error("reviewing task log", slog.String("error", err.Error()))
		return domain.TaskLog{}, fmt.Errorf("reviewing task log: %w", err)
	}

	slog.Info("task log reviewed successfully",
		slog.String("id", taskLogID.String()),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewerID.String()))

	duty, err := s.dutyService.GetDuty(ctx, taskLog.DutyID)
	if err != nil {
		slog.Warn("getting duty for review events", slog.String("error", err.Error()))
		duty = domain.Duty{ID: taskLog.DutyID}
	}

	employee, err := s.userRepository.GetByID(ctx, taskLog.EmployeeID)
	if err != nil {
		slog.Warn("getting employee for review events", slog.String("error", err.Error()))
		employee = domain.User{ID: taskLog.EmployeeID}
	}

	s.publishEvents(ctx, domain.NewReviewEvents(taskLog, duty, employee)...)

	return taskLog, nil
}

// canReview allows global admins everywhere and department admins inside
// their own department.
func (s *SimpleTaskService) canReview(reviewer domain.User, taskLog domain.TaskLog) bool {
	if reviewer.Role != domain.RoleAdmin {
		return false
	}
	if reviewer.DepartmentID == "" {
		return true
	}
	return reviewer.DepartmentID == taskLog.DepartmentID
}

func (s *SimpleTaskService) GetTaskLog(ctx context.Context, id domain.ID) (domain.TaskLog, error) {
	taskLog, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTaskLogNotFound) {
			return domain.TaskLog{}, ErrTaskLogNotFound
		}
		slog.Error("getting task log", slog.String("error", err.Error()))
		return domain.TaskLog{}, fmt.Errorf("getting task log: %w", err)
	}

	return taskLog, nil
}

func (s *SimpleTaskService) ListTaskLogs(ctx context.Context, pagination Pagination) ([]domain.TaskLog, int, error) {
	taskLogs, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing task logs", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing task logs: %w", err)
	}

	return taskLogs, total, nil
}

func (s *SimpleTaskService) ListTaskLogsByEmployee(ctx context.Context, employeeID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error) {
	taskLogs, total, err := s.repository.FindAllByEmployee(ctx, employeeID, pagination)
	if err != nil {
		slog.Error("listing task logs by employee", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing task logs by employee: %w", err)
	}

	return taskLogs, total, nil
}

func (s *SimpleTaskService) ListTaskLogsByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error) {
	taskLogs, total, err := s.repository.FindAllByDepartment(ctx, departmentID, pagination)
	if err != nil {
		slog.Error("listing task logs by department", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing task logs by department: %w", err)
	}

	return taskLogs, total, nil
}

func (s *SimpleTaskService) ListTaskLogsByDuty(ctx context.Context, dutyID domain.ID, pagination Pagination) ([]domain.TaskLog, int, error) {
	taskLogs, total, err := s.repository.FindAllByDuty(ctx, dutyID, pagination)
	if err != nil {
		slog.Error("listing task logs by duty", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing task logs by duty: %w", err)
	}

	return taskLogs, total, nil
}

func (s *SimpleTaskService) lockSlot(employeeID, dutyID domain.ID, dayStart time.Time) func() {
	key := fmt.Sprintf("%s|%s|%s", employeeID, dutyID, dayStart.Format(time.DateOnly))

	s.slotMu.Lock()
	lock, ok := s.slotLocks[key]
	if !ok {
		lock = &slotLock{}
		s.slotLocks[key] = lock
	}
	lock.refs++
	s.slotMu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		s.slotMu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.slotLocks, key)
		}
		s.slotMu.Unlock()
	}
}

// publishEvents fans events out without holding up the request. Failures are
// logged and dropped.
func (s *SimpleTaskService) publishEvents(ctx context.Context, events ...domain.TaskEvent) {
	for _, event := range events {
		err := s.publisher.Publish(ctx, event)
		if err != nil {
			slog.Warn("publishing task event",
				slog.String("kind", string(event.Kind)),
				slog.String("task_log_id", event.TaskLogID.String()),
				slog.String("error", err.Error()))
		}
	}
}
