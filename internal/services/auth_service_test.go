package services

import (
	"context"
	"testing"

	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	return NewAuthService(newTestDB(t), testConfig(), newTestLogger())
}

func TestRegisterThenLogin(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	account, token, err := s.Register(ctx, &dtos.RegisterRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "secret123",
		Role:     models.RoleJobSeeker,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", account.Email)

	// The registration token decodes to the same account id and role.
	claims, err := auth.ParseToken(token, []byte(s.cfg.JWTSecret))
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, models.RoleJobSeeker, claims.Role)

	logged, token2, err := s.Login(ctx, &dtos.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
		Role:     models.RoleJobSeeker,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.Equal(t, account.ID, logged.ID)

	claims2, err := auth.ParseToken(token2, []byte(s.cfg.JWTSecret))
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims2.UserID)
	assert.Equal(t, models.RoleJobSeeker, claims2.Role)
}

func TestRegister_DuplicateEmailSameRole(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	req := &dtos.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: models.RoleJobSeeker,
	}
	_, _, err := s.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = s.Register(ctx, req)
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestRegister_SameEmailOtherRole(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	_, _, err := s.Register(ctx, &dtos.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: models.RoleJobSeeker,
	})
	require.NoError(t, err)

	// The same address may exist once per role.
	_, _, err = s.Register(ctx, &dtos.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: models.RoleRecruiter,
	})
	assert.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	_, _, err := s.Register(ctx, &dtos.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: models.RoleJobSeeker,
	})
	require.NoError(t, err)

	_, _, err = s.Login(ctx, &dtos.LoginRequest{
		Email: "ada@example.com", Password: "wrong", Role: models.RoleJobSeeker,
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	// Right password, wrong role namespace.
	_, _, err = s.Login(ctx, &dtos.LoginRequest{
		Email: "ada@example.com", Password: "secret123", Role: models.RoleRecruiter,
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdateProfile_PartialAndImmutableFields(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	account, _, err := s.Register(ctx, &dtos.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: models.RoleJobSeeker,
		Location: "Berlin",
	})
	require.NoError(t, err)

	bio := "systems programmer"
	skills := []string{"go", "sql"}
	updated, err := s.UpdateProfile(ctx, account.ID, &dtos.UpdateProfileRequest{
		Bio:    &bio,
		Skills: &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, "systems programmer", updated.Bio)
	assert.Equal(t, skills, updated.Skills)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "ada@example.com", updated.Email)

	// Login still works with the original password.
	_, _, err = s.Login(ctx, &dtos.LoginRequest{
		Email: "ada@example.com", Password: "secret123", Role: models.RoleJobSeeker,
	})
	assert.NoError(t, err)
}

func TestGetPublicProfile_RoleMismatch(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	account, _, err := s.Register(ctx, &dtos.RegisterRequest{
		Name: "Rita", Email: "rita@example.com", Password: "secret123", Role: models.RoleRecruiter,
	})
	require.NoError(t, err)

	_, err = s.GetPublicProfile(ctx, account.ID, models.RoleJobSeeker)
	assert.ErrorIs(t, err, common.ErrNotFound)

	got, err := s.GetPublicProfile(ctx, account.ID, models.RoleRecruiter)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
}
