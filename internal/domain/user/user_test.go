package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/subkeeper/internal/domain/user/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
)

// --- helpers ---

type stubHasher struct {
	hashErr error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h stubHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newTestUser(t *testing.T, isAdmin bool) *User {
	t.Helper()
	email, err := vo.NewEmail("Alice@Example.com")
	require.NoError(t, err)
	password, err := vo.NewPassword("secret123")
	require.NoError(t, err)
	u, err := NewUser(email, password, isAdmin, stubHasher{})
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t, false)

	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.Equal(t, "hashed:secret123", u.PasswordHash())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, authorization.RoleUser, u.Role())
}

func TestNewUser_HashFailure(t *testing.T) {
	email, _ := vo.NewEmail("bob@example.com")
	password, _ := vo.NewPassword("secret123")

	_, err := NewUser(email, password, false, stubHasher{hashErr: errors.New("boom")})
	assert.Error(t, err)
}

func TestUser_VerifyPassword(t *testing.T) {
	u := newTestUser(t, false)

	assert.NoError(t, u.VerifyPassword("secret123", stubHasher{}))
	assert.ErrorIs(t, u.VerifyPassword("wrong", stubHasher{}), ErrInvalidCredentials)
}

func TestUser_PromoteToAdmin(t *testing.T) {
	u := newTestUser(t, false)

	u.PromoteToAdmin()

	assert.True(t, u.IsAdmin())
	assert.Equal(t, authorization.RoleAdmin, u.Role())
}

func TestUser_ChangeEmail(t *testing.T) {
	u := newTestUser(t, false)
	email, err := vo.NewEmail("carol@example.com")
	require.NoError(t, err)

	u.ChangeEmail(email)

	assert.True(t, u.Email().Equals(email))
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t, false)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(1))
	assert.Error(t, u.SetID(2))
}
