package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Cl@vier2024")
	assert.NoError(t, err)
	assert.NotEqual(t, "Cl@vier2024", hash)

	assert.True(t, CheckPassword("Cl@vier2024", hash))
	assert.False(t, CheckPassword("Cl@vier2025", hash))
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"too short", "Ab1!", false},
		{"no uppercase", "clavier2024!", false},
		{"no lowercase", "CLAVIER2024!", false},
		{"no digit", "Clavier!!!!", false},
		{"no special", "Clavier2024", false},
		{"common password", "P@ssword1", false},
		{"valid", "Cl@vier2024", true},
		{"valid with accents", "Vélocité#77", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsCommonPassword(t *testing.T) {
	assert.True(t, IsCommonPassword("azerty123"))
	assert.True(t, IsCommonPassword("AZERTY123"))
	assert.False(t, IsCommonPassword("Vélocité#77"))
}
