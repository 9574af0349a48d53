package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)
	assert.Contains(t, hash, "$2a$")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("mySecurePassword123")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		want           bool
	}{
		{"correct password", hash, "mySecurePassword123", true},
		{"incorrect password", hash, "wrongPassword", false},
		{"empty password", hash, "", false},
		{"invalid hash", "invalid-hash", "mySecurePassword123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.hashedPassword, tt.password))
		})
	}
}

func TestHashPasswordConsistency(t *testing.T) {
	hash1, err1 := HashPassword("testPassword")
	hash2, err2 := HashPassword("testPassword")

	assert.NoError(t, err1)
	assert.NoError(t, err2)

	// bcrypt salts, so the hashes differ but both verify
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, VerifyPassword(hash1, "testPassword"))
	assert.True(t, VerifyPassword(hash2, "testPassword"))
}

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode()
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}
