package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const specialCharacters = `!@#$%^&*(),.?":{}|<>`

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces length and character-class rules
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters long.")
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower {
		return fmt.Errorf("Password must contain at least one lowercase letter.")
	}
	if !upper {
		return fmt.Errorf("Password must contain at least one uppercase letter.")
	}
	if !digit {
		return fmt.Errorf("Password must contain at least one digit.")
	}
	if !strings.ContainsAny(password, specialCharacters) {
		return fmt.Errorf("Password must contain at least one special character.")
	}
	return nil
}
