package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.DateOfBirth != nil && input.DateOfBirth.After(time.Now()) {
		return nil, fmt.Errorf("%w: date_of_birth must be in the past", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Gender:         input.Gender,
		DateOfBirth:    input.DateOfBirth,
		Location:       input.Location,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// ReconcileDues runs the balance invariant check: every user's dues must
// equal the sum of their pending due records. Drift is repaired, not
// tolerated silently.
func (s *UserService) ReconcileDues(ctx context.Context) (int, error) {
	fixed, err := s.repo.ReconcileDues(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile dues: %w", err)
	}

	if fixed > 0 {
		s.logger.Warn("dues balances reconciled",
			logger.Int("fixed", fixed),
		)
	}

	return fixed, nil
}
