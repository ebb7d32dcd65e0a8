// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/mock"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "items-api",
	TokenDuration: 30 * time.Minute,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig, logger.Nop())
	return svc, repo
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john@example.com", user.Email)
			assert.NotEqual(t, "secret123", user.HashedPassword)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret123")))

			user.ID = 1
			user.CreatedAt = time.Now()
			return user, nil
		})

	registered, err := svc.Register(ctx, models.Credentials{Email: "john@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, "john@example.com", registered.Email)
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), models.Credentials{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), models.Credentials{Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.Credentials{Email: "john@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	stored := models.User{
		ID:             7,
		Email:          "alice@example.com",
		HashedPassword: hashOf(t, "secret123"),
	}

	repo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(stored, nil)

	user, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "ghost@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	stored := models.User{
		ID:             7,
		Email:          "alice@example.com",
		HashedPassword: hashOf(t, "secret123"),
	}

	repo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(stored, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CreateToken_And_ResolveToken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "alice@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	repo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(user, nil)

	resolved, err := svc.ResolveToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestAuthService_ResolveToken_Malformed(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ResolveToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolveToken_WrongIssuer(t *testing.T) {
	svc, _ := newTestAuthService(t)

	foreign, err := utils.GenerateJWTToken("another-service", "alice@example.com", time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ResolveToken(context.Background(), foreign.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolveToken_SubjectGone(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "deleted@example.com"})
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(ctx, "deleted@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.ResolveToken(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
