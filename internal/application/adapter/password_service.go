// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService handles credential hashing and password policy checks.
type PasswordService interface {
	// HashPassword derives a storable hash from the plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum policy.
	ValidatePasswordStrength(password string) error
}
