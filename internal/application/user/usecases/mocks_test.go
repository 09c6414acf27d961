package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/orris-inc/subkeeper/internal/domain/user"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
)

// mockUserRepository is an in-memory user store keyed by email.
type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, u *user.User) error
	GetSummaryByEmailFunc func(ctx context.Context, email string) (*user.Summary, error)

	users  map[string]*user.User
	nextID uint
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: map[string]*user.User{}, nextID: 100}
	for _, u := range users {
		m.users[u.Email().String()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	if _, ok := m.users[u.Email().String()]; ok {
		return user.ErrEmailAlreadyExists
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.Email().String()] = u
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	for email, existing := range m.users {
		if email == u.Email().String() && existing.ID() != u.ID() {
			return user.ErrEmailAlreadyExists
		}
	}
	for email, existing := range m.users {
		if existing.ID() == u.ID() {
			delete(m.users, email)
		}
	}
	m.users[u.Email().String()] = u
	return nil
}

func (m *mockUserRepository) GetSummaryByEmail(ctx context.Context, email string) (*user.Summary, error) {
	if m.GetSummaryByEmailFunc != nil {
		return m.GetSummaryByEmailFunc(ctx, email)
	}
	u := m.users[email]
	if u == nil {
		return nil, nil
	}
	return &user.Summary{ID: u.ID(), Email: u.Email().String(), IsAdmin: u.IsAdmin(), CreatedAt: u.CreatedAt()}, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	if !strings.HasPrefix(hash, "hashed:") || strings.TrimPrefix(hash, "hashed:") != password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	IssueFunc func(userID uint, role authorization.UserRole) (*IssuedToken, error)
}

func (m *mockTokenIssuer) Issue(userID uint, role authorization.UserRole) (*IssuedToken, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, role)
	}
	return &IssuedToken{AccessToken: "token-" + role.String(), ExpiresIn: time.Hour}, nil
}
