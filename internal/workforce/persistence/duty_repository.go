package persistence

import (
	"context"
	"errors"
	"fmt"
	"workforce-server/internal/infra/sql"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/persistence/internal"
	"workforce-server/internal/workforce/usecases"
)

func NewDutyRepository(orm sql.ORM) (*SimpleDutyRepository, error) {
	err := orm.AutoMigrate(&internal.Duty{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDutyRepository{
		orm: orm,
	}, nil
}

var _ usecases.DutyRepository = (*SimpleDutyRepository)(nil)

type SimpleDutyRepository struct {
	orm sql.ORM
}

// Create inserts the duty and appends its id to the owning department's duty
// list in a single transaction, so the two records cannot drift apart.
func (r *SimpleDutyRepository) Create(ctx context.Context, duty domain.Duty) error {
	entity := internal.FromDuty(duty)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("inserting duty: %w", err)
		}

		var departmentEntity internal.Department
		err := tx.First(&departmentEntity, "id = ?", duty.DepartmentID.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrDutyInconsistent
		}
		if err != nil {
			return fmt.Errorf("loading department: %w", err)
		}

		department := departmentEntity.ToDomain()
		department.AppendDuty(duty.ID)

		updated := internal.FromDepartment(department)
		if err := tx.Save(&updated).Error(); err != nil {
			return fmt.Errorf("updating department: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, usecases.ErrDutyInconsistent) {
			return usecases.ErrDutyInconsistent
		}
		return fmt.Errorf("database transaction: %w", err)
	}

	return nil
}

func (r *SimpleDutyRepository) GetByID(ctx context.Context, id domain.ID) (domain.Duty, error) {
	var entity internal.Duty
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Duty{}, usecases.ErrDutyNotFound
	}

	if err != nil {
		return domain.Duty{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDutyRepository) GetByDepartmentAndTitle(ctx context.Context, departmentID domain.ID, title string) (domain.Duty, error) {
	var entity internal.Duty
	err := r.orm.
		WithContext(ctx).
		Where("department_id = ? AND title = ?", departmentID.String(), title).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Duty{}, usecases.ErrDutyNotFound
	}

	if err != nil {
		return domain.Duty{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDutyRepository) Update(ctx context.Context, duty domain.Duty) error {
	entity := internal.FromDuty(duty)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleDutyRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Duty, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Duty{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Duty
	err = r.orm.
		WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Duty, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleDutyRepository) FindAllByDepartment(ctx context.Context, departmentID domain.ID, pagination usecases.Pagination) ([]domain.Duty, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Duty{}).
		Where("department_id = ?", departmentID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Duty
	err = r.orm.
		WithContext(ctx).
		Where("department_id = ?", departmentID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Duty, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
