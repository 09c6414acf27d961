package user

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/subkeeper/internal/domain/user/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
)

// PasswordHasher hashes and verifies passwords; implemented with bcrypt.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is an account that can own subscriptions.
type User struct {
	id           uint
	email        vo.Email
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email vo.Email, password vo.Password, isAdmin bool, hasher PasswordHasher) (*User, error) {
	if email.String() == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	u := &User{
		email:     email,
		isAdmin:   isAdmin,
		createdAt: now,
		updatedAt: now,
	}
	if err := u.SetPassword(password, hasher); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructUser(id uint, email vo.Email, passwordHash string, isAdmin bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) Role() authorization.UserRole {
	return authorization.RoleFor(u.isAdmin)
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPassword(password vo.Password, hasher PasswordHasher) error {
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (u *User) ChangeEmail(email vo.Email) {
	if u.email.Equals(email) {
		return
	}
	u.email = email
	u.updatedAt = biztime.NowUTC()
}

// PromoteToAdmin grants the admin role; used by the admin bootstrap command.
func (u *User) PromoteToAdmin() {
	if u.isAdmin {
		return
	}
	u.isAdmin = true
	u.updatedAt = biztime.NowUTC()
}
