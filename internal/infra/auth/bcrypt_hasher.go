// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"contacts/config"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
)

const defaultMinPasswordLength = 3

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with the default password policy.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:   cost,
		policy: config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength},
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.policy.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	var violation string
	switch {
	case len(password) < minLength:
		violation = "password must be at least " + strconv.Itoa(minLength) + " characters long"
	case h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength:
		violation = "password must be at most " + strconv.Itoa(h.policy.MaxLength) + " characters long"
	case h.policy.RequireLowercase && !h.hasLowercase(password):
		violation = "password must contain at least one lowercase letter"
	case h.policy.RequireUppercase && !h.hasUppercase(password):
		violation = "password must contain at least one uppercase letter"
	case h.policy.RequireNumbers && !h.hasNumbers(password):
		violation = "password must contain at least one number"
	case h.policy.RequireSpecial && !h.hasSpecialChars(password):
		violation = "password must contain at least one special character"
	default:
		return nil
	}

	return domainerrors.ErrPasswordStrength.WithMessage(violation)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}
