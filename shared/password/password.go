package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the hashes seeded in the user directory.
const Cost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// decoy is compared against when there is no account, so an unknown email
// costs the same bcrypt work as a wrong password.
var decoy = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("mykuliah-decoy"), Cost)
	if err != nil {
		panic(err)
	}

	return hash
})

// Hash generates a bcrypt hash of the password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Verify checks password against hash. An empty hash stands for a missing account:
// the decoy is still compared and ErrInvalidPassword returned.
func Verify(password, hash string) error {
	target := []byte(hash)
	if hash == "" {
		target = decoy()
	}

	err := bcrypt.CompareHashAndPassword(target, []byte(password))

	switch {
	case hash == "" || password == "":
		return ErrInvalidPassword
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	case err != nil:
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
