package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"
	"workforce-server/internal/infra/sql"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/persistence/internal"
	"workforce-server/internal/workforce/usecases"
)

func NewTaskLogRepository(orm sql.ORM) (*SimpleTaskLogRepository, error) {
	err := orm.AutoMigrate(&internal.TaskLog{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTaskLogRepository{
		orm: orm,
	}, nil
}

var _ usecases.TaskLogRepository = (*SimpleTaskLogRepository)(nil)

type SimpleTaskLogRepository struct {
	orm sql.ORM
}

func (r *SimpleTaskLogRepository) Create(ctx context.Context, taskLog domain.TaskLog) error {
	entity := internal.FromTaskLog(taskLog)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleTaskLogRepository) Update(ctx context.Context, taskLog domain.TaskLog) error {
	entity := internal.FromTaskLog(taskLog)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleTaskLogRepository) GetByID(ctx context.Context, id domain.ID) (domain.TaskLog, error) {
	var entity internal.TaskLog
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}

	if err != nil {
		return domain.TaskLog{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTaskLogRepository) FindLatestInWindow(ctx context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error) {
	var entity internal.TaskLog
	err := r.orm.
		WithContext(ctx).
		Where("employee_id = ? AND duty_id = ? AND submitted_at >= ? AND submitted_at < ?",
			employeeID.String(), dutyID.String(), start, end).
		Order("submitted_at DESC").
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}

	if err != nil {
		return domain.TaskLog{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTaskLogRepository) FindOpenInWindow(ctx context.Context, employeeID, dutyID domain.ID, start, end time.Time) (domain.TaskLog, error) {
	var entity internal.TaskLog
	err := r.orm.
		WithContext(ctx).
		Where("employee_id = ? AND duty_id = ? AND allow_updates = ? AND submitted_at >= ? AND submitted_at < ?",
			employeeID.String(), dutyID.String(), true, start, end).
		Order("submitted_at DESC").
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.TaskLog{}, usecases.ErrTaskLogNotFound
	}

	if err != nil {
		return domain.TaskLog{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTaskLogRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return r.findAllWhere(ctx, pagination, "", nil)
}

func (r *SimpleTaskLogRepository) FindAllByEmployee(ctx context.Context, employeeID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return r.findAllWhere(ctx, pagination, "employee_id = ?", []any{employeeID.String()})
}

func (r *SimpleTaskLogRepository) FindAllByDepartment(ctx context.Context, departmentID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return r.findAllWhere(ctx, pagination, "department_id = ?", []any{departmentID.String()})
}

func (r *SimpleTaskLogRepository) FindAllByDuty(ctx context.Context, dutyID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return r.findAllWhere(ctx, pagination, "duty_id = ?", []any{dutyID.String()})
}

func (r *SimpleTaskLogRepository) findAllWhere(ctx context.Context, pagination usecases.Pagination, condition string, args []any) ([]domain.TaskLog, int, error) {
	countQuery := r.orm.WithContext(ctx).Model(&internal.TaskLog{})
	if condition != "" {
		countQuery = countQuery.Where(condition, args...)
	}

	var total int64
	err := countQuery.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	query := r.orm.WithContext(ctx)
	if condition != "" {
		query = query.Where(condition, args...)
	}

	var entities []internal.TaskLog
	err = query.
		Order("submitted_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.TaskLog, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
