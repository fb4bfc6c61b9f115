package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id domain.ID) (domain.User, error)
	ListUsers(ctx context.Context, pagination Pagination) ([]domain.User, int, error)
	AssignDuty(ctx context.Context, userID, dutyID domain.ID) error
	UnassignDuty(ctx context.Context, userID, dutyID domain.ID) error
	BeginLeave(ctx context.Context, userID domain.ID, until utils.Time) error
	EndLeave(ctx context.Context, userID domain.ID) error
}

func NewUserService(repository UserRepository, dutyRepository DutyRepository) *SimpleUserService {
	return &SimpleUserService{
		repository:     repository,
		dutyRepository: dutyRepository,
	}
}

var _ UserService = (*SimpleUserService)(nil)

type SimpleUserService struct {
	repository     UserRepository
	dutyRepository DutyRepository
}

func (s *SimpleUserService) CreateUser(ctx context.Context, user domain.User) error {
	existing, err := s.repository.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		slog.Error("checking existing user", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing user: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("user already exists", slog.String("email", user.Email))
		return ErrUserDuplicated
	}

	err = s.repository.Create(ctx, user)
	if err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created successfully",
		slog.String("id", user.ID.String()),
		slog.String("email", user.Email))

	return nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *SimpleUserService) ListUsers(ctx context.Context, pagination Pagination) ([]domain.User, int, error) {
	users, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing users", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return users, total, nil
}

func (s *SimpleUserService) AssignDuty(ctx context.Context, userID, dutyID domain.ID) error {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	duty, err := s.dutyRepository.GetByID(ctx, dutyID)
	if err != nil {
		if errors.Is(err, ErrDutyNotFound) {
			return ErrDutyNotFound
		}
		return fmt.Errorf("getting duty: %w", err)
	}

	if !duty.IsActive {
		return ErrDutyInactive
	}

	user.AssignDuty(dutyID)

	err = s.repository.Update(ctx, user)
	if err != nil {
		slog.Error("assigning duty", slog.String("error", err.Error()))
		return fmt.Errorf("assigning duty: %w", err)
	}

	slog.Info("duty assigned successfully",
		slog.String("user_id", userID.String()),
		slog.String("duty_id", dutyID.String()))

	return nil
}

func (s *SimpleUserService) UnassignDuty(ctx context.Context, userID, dutyID domain.ID) error {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	user.UnassignDuty(dutyID)

	err = s.repository.Update(ctx, user)
	if err != nil {
		slog.Error("unassigning duty", slog.String("error", err.Error()))
		return fmt.Errorf("unassigning duty: %w", err)
	}

	slog.Info("duty unassigned successfully",
		slog.String("user_id", userID.String()),
		slog.String("duty_id", dutyID.String()))

	return nil
}

func (s *SimpleUserService) BeginLeave(ctx context.Context, userID domain.ID, until utils.Time) error {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	user.BeginLeave(until)

	err = s.repository.Update(ctx, user)
	if err != nil {
		slog.Error("beginning leave", slog.String("error", err.Error()))
		return fmt.Errorf("beginning leave: %w", err)
	}

	slog.Info("leave started",
		slog.String("user_id", userID.String()),
		slog.Time("until", until.Time))

	return nil
}

func (s *SimpleUserService) EndLeave(ctx context.Context, userID domain.ID) error {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	user.EndLeave()

	err = s.repository.Update(ctx, user)
	if err != nil {
		slog.Error("ending leave", slog.String("error", err.Error()))
		return fmt.Errorf("ending leave: %w", err)
	}

	slog.Info("leave ended", slog.String("user_id", userID.String()))
	return nil
}
