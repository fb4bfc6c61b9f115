package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"workforce-server/internal/workforce/domain"
)

type DepartmentService interface {
	CreateDepartment(ctx context.Context, department domain.Department) error
	GetDepartment(ctx context.Context, id domain.ID) (domain.Department, error)
	ListDepartments(ctx context.Context, pagination Pagination) ([]domain.Department, int, error)
	UpdateDepartment(ctx context.Context, department domain.Department) error
	DeleteDepartment(ctx context.Context, id domain.ID) error
}

func NewDepartmentService(repository DepartmentRepository) *SimpleDepartmentService {
	return &SimpleDepartmentService{
		repository: repository,
	}
}

var _ DepartmentService = (*SimpleDepartmentService)(nil)

type SimpleDepartmentService struct {
	repository DepartmentRepository
}

func (s *SimpleDepartmentService) CreateDepartment(ctx context.Context, department domain.Department) error {
	existing, err := s.repository.GetByName(ctx, department.Name)
	if err != nil && !errors.Is(err, ErrDepartmentNotFound) {
		slog.Error("checking existing department", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing department: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("department already exists", slog.String("name", department.Name))
		return ErrDepartmentDuplicated
	}

	err = s.repository.Create(ctx, department)
	if err != nil {
		slog.Error("creating department", slog.String("error", err.Error()))
		return fmt.Errorf("creating department: %w", err)
	}

	slog.Info("department created successfully",
		slog.String("id", department.ID.String()),
		slog.String("name", department.Name))

	return nil
}

func (s *SimpleDepartmentService) GetDepartment(ctx context.Context, id domain.ID) (domain.Department, error) {
	department, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return domain.Department{}, ErrDepartmentNotFound
		}
		slog.Error("getting department", slog.String("error", err.Error()))
		return domain.Department{}, fmt.Errorf("getting department: %w", err)
	}

	return department, nil
}

func (s *SimpleDepartmentService) ListDepartments(ctx context.Context, pagination Pagination) ([]domain.Department, int, error) {
	departments, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing departments", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing departments: %w", err)
	}

	return departments, total, nil
}

func (s *SimpleDepartmentService) UpdateDepartment(ctx context.Context, department domain.Department) error {
	existing, err := s.repository.GetByID(ctx, department.ID)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("getting department: %w", err)
	}

	if department.Name != "" && department.Name != existing.Name {
		conflict, err := s.repository.GetByName(ctx, department.Name)
		if err != nil && !errors.Is(err, ErrDepartmentNotFound) {
			return fmt.Errorf("checking name conflict: %w", err)
		}
		if err == nil && conflict.ID != department.ID {
			return ErrDepartmentDuplicated
		}
		existing.Name = department.Name
	}
	if department.Description != "" {
		existing.Description = department.Description
	}
	if department.NotificationEmail != "" {
		existing.NotificationEmail = department.NotificationEmail
	}

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating department", slog.String("error", err.Error()))
		return fmt.Errorf("updating department: %w", err)
	}

	slog.Info("department updated successfully", slog.String("id", department.ID.String()))
	return nil
}

// DeleteDepartment is the only hard-delete path: the department's duties go
// with it, while task logs that already reference them are kept.
func (s *SimpleDepartmentService) DeleteDepartment(ctx context.Context, id domain.ID) error {
	_, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("getting department: %w", err)
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting department", slog.String("error", err.Error()))
		return fmt.Errorf("deleting department: %w", err)
	}

	slog.Info("department deleted successfully", slog.String("id", id.String()))
	return nil
}
