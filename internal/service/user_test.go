package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_MissingUsername(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_FutureDateOfBirth(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	dob := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice", DateOfBirth: &dob})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_ReconcileDues_ReportsFixed(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().ReconcileDues(mock.Anything).Return(3, nil)

	fixed, err := svc.ReconcileDues(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, fixed)
}

func TestUserService_ReconcileDues_Error(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().ReconcileDues(mock.Anything).Return(0, assert.AnError)

	_, err := svc.ReconcileDues(context.Background())

	require.Error(t, err)
}
