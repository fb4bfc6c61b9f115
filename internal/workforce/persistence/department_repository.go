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

func NewDepartmentRepository(orm sql.ORM) (*SimpleDepartmentRepository, error) {
	err := orm.AutoMigrate(&internal.Department{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDepartmentRepository{
		orm: orm,
	}, nil
}

var _ usecases.DepartmentRepository = (*SimpleDepartmentRepository)(nil)

type SimpleDepartmentRepository struct {
	orm sql.ORM
}

func (r *SimpleDepartmentRepository) Create(ctx context.Context, department domain.Department) error {
	entity := internal.FromDepartment(department)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleDepartmentRepository) GetByID(ctx context.Context, id domain.ID) (domain.Department, error) {
	var entity internal.Department
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Department{}, usecases.ErrDepartmentNotFound
	}

	if err != nil {
		return domain.Department{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDepartmentRepository) GetByName(ctx context.Context, name string) (domain.Department, error) {
	var entity internal.Department
	err := r.orm.
		WithContext(ctx).
		Where("name = ?", name).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Department{}, usecases.ErrDepartmentNotFound
	}

	if err != nil {
		return domain.Department{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDepartmentRepository) Update(ctx context.Context, department domain.Department) error {
	entity := internal.FromDepartment(department)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleDepartmentRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Where("department_id = ?", id.String()).Delete(&internal.Duty{}).Error(); err != nil {
			return fmt.Errorf("deleting duties: %w", err)
		}

		if err := tx.Delete(&internal.Department{}, "id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting department: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleDepartmentRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Department, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Department{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Department
	err = r.orm.
		WithContext(ctx).
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Department, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
