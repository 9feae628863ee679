package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the registration policy: minimum length,
// one of each character class, and not a known common password.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("le mot de passe doit contenir au moins %d caractères", minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return errors.New("le mot de passe doit contenir au moins une majuscule")
	case !hasLower:
		return errors.New("le mot de passe doit contenir au moins une minuscule")
	case !hasDigit:
		return errors.New("le mot de passe doit contenir au moins un chiffre")
	case !hasSpecial:
		return errors.New("le mot de passe doit contenir au moins un caractère spécial")
	}

	if IsCommonPassword(password) {
		return errors.New("ce mot de passe est trop commun et facilement piratable, veuillez choisir un mot de passe plus sécurisé")
	}
	return nil
}

// IsCommonPassword reports whether the password appears in the bundled
// breached/common list. The check is case-insensitive: leaked lists are
// matched that way by cracking tools too.
func IsCommonPassword(password string) bool {
	_, found := commonPasswords[strings.ToLower(password)]
	return found
}
