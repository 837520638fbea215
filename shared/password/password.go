package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}

var dummyHash = sync.OnceValue(func() []byte {
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)

	hash, err := bcrypt.GenerateFromPassword(secret, DefaultCost)
	if err != nil {
		return nil
	}

	return hash
})

// VerifyDummy does the work of Verify against a hash that no password matches. It
// always returns ErrInvalidPassword.
func VerifyDummy(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}

	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))

	return ErrInvalidPassword
}

// CheckLength rejects passwords shorter than min characters.
func CheckLength(password string, min int) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if utf8.RuneCountInString(password) < min {
		return fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, min)
	}

	return nil
}
