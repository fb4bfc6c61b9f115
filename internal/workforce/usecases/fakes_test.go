package usecases_test

import (
	"context"
	"sync"
	"time"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/usecases"
)

type fakeDepartmentRepository struct {
	mu          sync.Mutex
	departments map[domain.ID]domain.Department
}

func newFakeDepartmentRepository() *fakeDepartmentRepository {
	return &fakeDepartmentRepository{departments: make(map[domain.ID]domain.Department)}
}

func (r *fakeDepartmentRepository) Create(_ context.Context, department domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepository) GetByID(_ context.Context, id domain.ID) (domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	department, ok := r.departments[id]
	if !ok {
		return domain.Department{}, usecases.ErrDepartmentNotFound
	}
	return department, nil
}

func (r *fakeDepartmentRepository) GetByName(_ context.Context, name string) (domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, department := range r.departments {
		if department.Name == name {
			return department, nil
		}
	}
	return domain.Department{}, usecases.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepository) Update(_ context.Context, department domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepository) Delete(_ context.Context, id domain.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.departments, id)
	return nil
}

func (r *fakeDepartmentRepository) FindAll(_ context.Context, _ usecases.Pagination) ([]domain.Department, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Department, 0, len(r.departments))
	for _, department := range r.departments {
		result = append(result, department)
	}
	return result, len(result), nil
}

type fakeDutyRepository struct {
	mu     sync.Mutex
	duties map[domain.ID]domain.Duty
}

func newFakeDutyRepository() *fakeDutyRepository {
	return &fakeDutyRepository{duties: make(map[domain.ID]domain.Duty)}
}

func (r *fakeDutyRepository) Create(_ context.Context, duty domain.Duty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.duties[duty.ID] = duty
	return nil
}

func (r *fakeDutyRepository) GetByID(_ context.Context, id domain.ID) (domain.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	duty, ok := r.duties[id]
	if !ok {
		return domain.Duty{}, usecases.ErrDutyNotFound
	}
	return duty, nil
}

func (r *fakeDutyRepository) GetByDepartmentAndTitle(_ context.Context, departmentID domain.ID, title string) (domain.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, duty := range r.duties {
		if duty.DepartmentID == departmentID && duty.Title == title {
			return duty, nil
		}
	}
	return domain.Duty{}, usecases.ErrDutyNotFound
}

func (r *fakeDutyRepository) Update(_ context.Context, duty domain.Duty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.duties[duty.ID] = duty
	return nil
}

func (r *fakeDutyRepository) FindAll(_ context.Context, _ usecases.Pagination) ([]domain.Duty, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Duty, 0, len(r.duties))
	for _, duty := range r.duties {
		result = append(result, duty)
	}
	return result, len(result), nil
}

func (r *fakeDutyRepository) FindAllByDepartment(_ context.Context, departmentID domain.ID, _ usecases.Pagination) ([]domain.Duty, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Duty
	for _, duty := range r.duties {
		if duty.DepartmentID == departmentID {
			result = append(result, duty)
		}
	}
	return result, len(result), nil
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[domain.ID]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[domain.ID]domain.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id domain.ID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, usecases.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, usecases.ErrUserNotFound
}

func (r *fakeUserRepository) Update(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindAll(_ context.Context, _ usecases.Pagination) ([]domain.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	return result, len(result), nil
}

func (r *fakeUserRepository) FindAllOnLeave(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.users {
		if user.Status == domain.UserStatusOnLeave {
			result = append(result, user)
		}
	}
	return result, nil
}

type fakeTaskLogRepository struct {
	mu       sync.Mutex
	taskLogs map[domain.ID]domain.TaskLog
}

func newFakeTaskLogRepository() *fakeTaskLogRepository {
	return &fakeTaskLogRepository{taskLogs: make(map[domain.ID]domain.TaskLog)}
}

func (r *fakeTaskLogRepository) Create(_ context.Context, taskLog domain.TaskLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taskLogs[taskLog.ID] = taskLog
	return nil
}

func (r *fakeTaskLogRepository) Update(_ context.Context, taskLog domain.TaskLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taskLogs[taskLog.ID] = taskLog
	return nil
}

func (r *fakeTaskLogRepository) GetByID(_ context.Context, id domain.ID) (domain.TaskLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	taskLog, ok := r.taskLogs[id]
	if !ok {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}
	return taskLog, nil
}

func (r *fakeTaskLogRepository) FindLatestInWindow(_ context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest domain.TaskLog
	found := false
	for _, taskLog := range r.taskLogs {
		if taskLog.EmployeeID != employeeID || taskLog.DutyID != dutyID {
			continue
		}
		submitted := taskLog.SubmittedAt.Time
		if submitted.Before(start) || !submitted.Before(end) {
			continue
		}
		if !found || submitted.After(latest.SubmittedAt.Time) {
			latest = taskLog
			found = true
		}
	}
	if !found {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}
	return latest, nil
}

func (r *fakeTaskLogRepository) FindOpenInWindow(_ context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest domain.TaskLog
	found := false
	for _, taskLog := range r.taskLogs {
		if taskLog.EmployeeID != employeeID || taskLog.DutyID != dutyID || !taskLog.AllowUpdates {
			continue
		}
		submitted := taskLog.SubmittedAt.Time
		if submitted.Before(start) || !submitted.Before(end) {
			continue
		}
		if !found || submitted.After(latest.SubmittedAt.Time) {
			latest = taskLog
			found = true
		}
	}
	if !found {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}
	return latest, nil
}

func (r *fakeTaskLogRepository) FindAll(_ context.Context, _ usecases.Pagination) ([]domain.TaskLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.TaskLog, 0, len(r.taskLogs))
	for _, taskLog := range r.taskLogs {
		result = append(result, taskLog)
	}
	return result, len(result), nil
}

func (r *fakeTaskLogRepository) FindAllByEmployee(_ context.Context, employeeID domain.ID, _ usecases.Pagination) ([]domain.TaskLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TaskLog
	for _, taskLog := range r.taskLogs {
		if taskLog.EmployeeID == employeeID {
			result = append(result, taskLog)
		}
	}
	return result, len(result), nil
}

func (r *fakeTaskLogRepository) FindAllByDepartment(_ context.Context, departmentID domain.ID, _ usecases.Pagination) ([]domain.TaskLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TaskLog
	for _, taskLog := range r.taskLogs {
		if taskLog.DepartmentID == departmentID {
			result = append(result, taskLog)
		}
	}
	return result, len(result), nil
}

func (r *fakeTaskLogRepository) FindAllByDuty(_ context.Context, dutyID domain.ID, _ usecases.Pagination) ([]domain.TaskLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TaskLog
	for _, taskLog := range r.taskLogs {
		if taskLog.DutyID == dutyID {
			result = append(result, taskLog)
		}
	}
	return result, len(result), nil
}

type fakeTaskEventPublisher struct {
	mu     sync.Mutex
	events []domain.TaskEvent
}

func (p *fakeTaskEventPublisher) Publish(_ context.Context, event domain.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeTaskEventPublisher) published() []domain.TaskEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]domain.TaskEvent, len(p.events))
	copy(result, p.events)
	return result
}
