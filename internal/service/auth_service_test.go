package service

import (
	"context"
	"testing"

	"edufocus-be/internal/dto"
	"edufocus-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func TestAuthRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newTestFactory(t), testJwtSecret)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "studybuddy",
		Email:    "buddy@example.com",
		Password: "correct-horse",
		FullName: "Study Buddy",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "studybuddy", registered.User.Username)
	assert.Nil(t, registered.User.LastLogin)

	logged, err := svc.Login(ctx, &dto.LoginRequest{
		Username: "studybuddy",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.NotNil(t, logged.User.LastLogin)
}

func TestAuthRegisterRejectsDuplicates(t *testing.T) {
	svc := NewAuthService(newTestFactory(t), testJwtSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "taken",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "someoneelse",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newTestFactory(t), testJwtSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "cautious",
		Email:    "cautious@example.com",
		Password: "right-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Username: "cautious",
		Password: "wrong-password",
	})
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
}

func TestAuthProfile(t *testing.T) {
	svc := NewAuthService(newTestFactory(t), testJwtSecret)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "profiled",
		Email:    "profiled@example.com",
		Password: "password123",
		FullName: "Pro Filed",
	})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, registered.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "profiled", profile.Username)
	assert.Equal(t, "Pro Filed", profile.FullName)
}
