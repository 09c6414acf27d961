package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/domain/user"
	vo "github.com/orris-inc/subkeeper/internal/domain/user/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

func seededUser(t *testing.T, id uint, email string, isAdmin bool) *user.User {
	t.Helper()
	e, err := vo.NewEmail(email)
	require.NoError(t, err)
	p, err := vo.NewPassword("secret123")
	require.NoError(t, err)
	u, err := user.NewUser(e, p, isAdmin, mockHasher{})
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestRegisterWithPasswordUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(seededUser(t, 1, "taken@example.com", false))
	uc := NewRegisterWithPasswordUseCase(repo, mockHasher{}, &mockTokenIssuer{}, logger.NewNopLogger())

	t.Run("success", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "New@Example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", result.User.Email)
		assert.False(t, result.User.IsAdmin)
		assert.Equal(t, "token-user", result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, int64(3600), result.ExpiresIn)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "taken@example.com", Password: "secret123"})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "nope", Password: "secret123"})
		assert.True(t, apperrors.IsValidationError(err))

		_, err = uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "short@example.com", Password: "123"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestLoginWithPasswordUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(seededUser(t, 1, "admin@example.com", true))
	uc := NewLoginWithPasswordUseCase(repo, mockHasher{}, &mockTokenIssuer{}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "ADMIN@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-admin", result.AccessToken)
	assert.Equal(t, "admin", result.User.Role)

	wrongPassword, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "admin@example.com", Password: "wrong"})
	assert.Nil(t, wrongPassword)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentialsError(err))

	_, unknownErr := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, unknownErr)
	assert.Equal(t, err.Error(), unknownErr.Error())
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(
		seededUser(t, 1, "alice@example.com", false),
		seededUser(t, 2, "bob@example.com", false),
	)
	uc := NewUpdateProfileUseCase(repo, mockHasher{}, logger.NewNopLogger())

	newEmail := "alice2@example.com"
	newPassword := "changed-pass"
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{UserID: 1, Email: &newEmail, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, newEmail, result.Email)

	stored, _ := repo.GetByEmail(context.Background(), newEmail)
	require.NotNil(t, stored)
	assert.NoError(t, stored.VerifyPassword(newPassword, mockHasher{}))

	taken := "bob@example.com"
	_, err = uc.Execute(context.Background(), UpdateProfileCommand{UserID: 1, Email: &taken})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Execute(context.Background(), UpdateProfileCommand{UserID: 99})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetUserByEmailUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(
		seededUser(t, 1, "alice@example.com", false),
		seededUser(t, 2, "bob@example.com", false),
	)
	uc := NewGetUserByEmailUseCase(repo, logger.NewNopLogger())

	self, err := uc.Execute(context.Background(), GetUserByEmailQuery{Email: "Alice@example.com", RequesterID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), self.ID)

	_, err = uc.Execute(context.Background(), GetUserByEmailQuery{Email: "bob@example.com", RequesterID: 1})
	assert.True(t, apperrors.IsNotFoundError(err))

	other, err := uc.Execute(context.Background(), GetUserByEmailQuery{Email: "bob@example.com", RequesterID: 1, RequesterIsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, uint(2), other.ID)

	_, err = uc.Execute(context.Background(), GetUserByEmailQuery{Email: "ghost@example.com", RequesterIsAdmin: true})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateAdminUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(seededUser(t, 1, "alice@example.com", false))
	uc := NewCreateAdminUseCase(repo, mockHasher{}, logger.NewNopLogger())

	created, err := uc.Execute(context.Background(), CreateAdminCommand{Email: "root@example.com", Password: "rootpass"})
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	promoted, err := uc.Execute(context.Background(), CreateAdminCommand{Email: "alice@example.com", Password: "newpass1"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), promoted.ID)
	assert.True(t, promoted.IsAdmin)
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(seededUser(t, 1, "alice@example.com", false))
	uc := NewGetProfileUseCase(repo, logger.NewNopLogger())

	profile, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "user", profile.Role)

	_, err = uc.Execute(context.Background(), 2)
	assert.True(t, apperrors.IsNotFoundError(err))
}
