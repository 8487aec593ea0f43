package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"lugo/pkg/serrors"
)

// Account is the credential pair bound to exactly one person. The secret is
// stored only as a bcrypt hash.
type Account struct {
	// Key is the opaque business key callers use to reference the account.
	Key string `json:"key"`
	// PersonKey references the person behind the account.
	PersonKey string `json:"personKey"`

	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the secret. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func hashSecret(secret, confirmation string) (string, error) {
	if secret == "" {
		return "", serrors.With(serrors.ErrInvalid, "password must not be empty")
	}
	if secret != confirmation {
		return "", serrors.With(serrors.ErrInvalid, "passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	return string(hash), nil
}

// NewAccount validates all fields, hashes the secret and returns a fully
// constructed account.
func NewAccount(key, personKey, email, secret, confirmation string) (*Account, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrInvalid, "account key is required")
	}
	if personKey == "" {
		return nil, serrors.With(serrors.ErrInvalid, "person key is required")
	}
	if email == "" {
		return nil, serrors.With(serrors.ErrInvalid, "email must not be empty")
	}
	hash, err := hashSecret(secret, confirmation)
	if err != nil {
		return nil, err
	}

	return &Account{
		Key:          key,
		PersonKey:    personKey,
		Email:        email,
		PasswordHash: hash,
	}, nil
}

// SetPassword re-validates the new secret against its confirmation and
// replaces the stored hash. The hash is untouched when validation fails.
func (a *Account) SetPassword(secret, confirmation string) error {
	hash, err := hashSecret(secret, confirmation)
	if err != nil {
		return err
	}

	a.PasswordHash = hash

	return nil
}

// VerifyPassword reports whether the given secret matches the stored hash.
func (a *Account) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(secret)) == nil
}
