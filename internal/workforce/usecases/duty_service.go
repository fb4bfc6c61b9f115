package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"workforce-server/internal/infra/cache"
	"workforce-server/internal/workforce/domain"
)

const _schemaCacheTTL = 5 * time.Minute

type DutyService interface {
	CreateDuty(ctx context.Context, duty domain.Duty) error
	GetDuty(ctx context.Context, id domain.ID) (domain.Duty, error)
	GetFormSchema(ctx context.Context, dutyID domain.ID) (domain.FormSchema, error)
	ListDuties(ctx context.Context, pagination Pagination) ([]domain.Duty, int, error)
	ListDutiesByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.Duty, int, error)
	DeactivateDuty(ctx context.Context, id domain.ID) error
	ValidateSubmission(ctx context.Context, dutyID domain.ID, payload map[string]any) (domain.ValidationResult, error)
}

func NewDutyService(
	repository DutyRepository,
	departmentRepository DepartmentRepository,
	schemaCache cache.Cache,
) *SimpleDutyService {
	return &SimpleDutyService{
		repository:           repository,
		departmentRepository: departmentRepository,
		schemaCache:          schemaCache,
	}
}

var _ DutyService = (*SimpleDutyService)(nil)

type SimpleDutyService struct {
	repository           DutyRepository
	departmentRepository DepartmentRepository
	schemaCache          cache.Cache
}

func (s *SimpleDutyService) CreateDuty(ctx context.Context, duty domain.Duty) error {
	_, err := s.departmentRepository.GetByID(ctx, duty.DepartmentID)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return ErrDepartmentNotFound
		}
		slog.Error("getting department", slog.String("error", err.Error()))
		return fmt.Errorf("getting department: %w", err)
	}

	existing, err := s.repository.GetByDepartmentAndTitle(ctx, duty.DepartmentID, duty.Title)
	if err != nil && !errors.Is(err, ErrDutyNotFound) {
		slog.Error("checking existing duty", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing duty: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("duty already exists",
			slog.String("department_id", duty.DepartmentID.String()),
			slog.String("title", duty.Title))
		return ErrDutyDuplicated
	}

	err = s.repository.Create(ctx, duty)
	if err != nil {
		slog.Error("creating duty", slog.String("error", err.Error()))
		return fmt.Errorf("creating duty: %w", err)
	}

	slog.Info("duty created successfully",
		slog.String("id", duty.ID.String()),
		slog.String("department_id", duty.DepartmentID.String()),
		slog.String("title", duty.Title))

	return nil
}

func (s *SimpleDutyService) GetDuty(ctx context.Context, id domain.ID) (domain.Duty, error) {
	duty, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDutyNotFound) {
			return domain.Duty{}, ErrDutyNotFound
		}
		slog.Error("getting duty", slog.String("error", err.Error()))
		return domain.Duty{}, fmt.Errorf("getting duty: %w", err)
	}

	return duty, nil
}

// GetFormSchema resolves the schema for a duty through the cache. Concurrent
// lookups of the same duty collapse into a single repository read.
func (s *SimpleDutyService) GetFormSchema(ctx context.Context, dutyID domain.ID) (domain.FormSchema, error) {
	value, err := s.schemaCache.GetOrSet(ctx, schemaCacheKey(dutyID), _schemaCacheTTL, func() (any, error) {
		duty, err := s.repository.GetByID(ctx, dutyID)
		if err != nil {
			return nil, err
		}
		return duty.Schema, nil
	})
	if err != nil {
		if errors.Is(err, ErrDutyNotFound) {
			return domain.FormSchema{}, ErrDutyNotFound
		}
		slog.Error("getting form schema", slog.String("error", err.Error()))
		return domain.FormSchema{}, fmt.Errorf("getting form schema: %w", err)
	}

	if schema, ok := value.(domain.FormSchema); ok {
		return schema, nil
	}

	// remote cache backends round-trip values through JSON
	return decodeCachedSchema(value)
}

func decodeCachedSchema(value any) (domain.FormSchema, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return domain.FormSchema{}, fmt.Errorf("unexpected cached schema type %T", value)
	}

	var schema domain.FormSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.FormSchema{}, fmt.Errorf("unexpected cached schema type %T", value)
	}

	return schema, nil
}

func (s *SimpleDutyService) ListDuties(ctx context.Context, pagination Pagination) ([]domain.Duty, int, error) {
	duties, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing duties", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing duties: %w", err)
	}

	return duties, total, nil
}

func (s *SimpleDutyService) ListDutiesByDepartment(ctx context.Context, departmentID domain.ID, pagination Pagination) ([]domain.Duty, int, error) {
	_, err := s.departmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return nil, 0, ErrDepartmentNotFound
		}
		return nil, 0, fmt.Errorf("getting department: %w", err)
	}

	duties, total, err := s.repository.FindAllByDepartment(ctx, departmentID, pagination)
	if err != nil {
		slog.Error("listing duties by department", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing duties by department: %w", err)
	}

	return duties, total, nil
}

func (s *SimpleDutyService) DeactivateDuty(ctx context.Context, id domain.ID) error {
	duty, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDutyNotFound) {
			return ErrDutyNotFound
		}
		return fmt.Errorf("getting duty: %w", err)
	}

	duty.Deactivate()

	err = s.repository.Update(ctx, duty)
	if err != nil {
		slog.Error("deactivating duty", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating duty: %w", err)
	}

	s.schemaCache.Delete(ctx, schemaCacheKey(id))

	slog.Info("duty deactivated successfully", slog.String("id", id.String()))
	return nil
}

// ValidateSubmission dry-runs a payload against the duty's schema without
// touching any submission state.
func (s *SimpleDutyService) ValidateSubmission(ctx context.Context, dutyID domain.ID, payload map[string]any) (domain.ValidationResult, error) {
	schema, err := s.GetFormSchema(ctx, dutyID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	return domain.ValidateSubmission(schema, payload), nil
}

func schemaCacheKey(dutyID domain.ID) string {
	return "duty-schema:" + dutyID.String()
}
