package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes
	MaxPasswordLength = 72
)

// Password is a plain-text password that passed the length policy. It is never persisted.
type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return Password{}, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(value) > MaxPasswordLength {
		return Password{}, fmt.Errorf("password cannot exceed %d bytes", MaxPasswordLength)
	}
	return Password{value: value}, nil
}

func (p Password) String() string {
	return p.value
}
