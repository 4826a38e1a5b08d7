package middleware

import (
	"testing"

	"github.com/jazeyttv/jazey-dev/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckCredentials(t *testing.T) {
	admin := config.AdminConfig{Username: "jazey", Password: "hunter2"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "jazey", "hunter2", true},
		{"wrong password", "jazey", "nope", false},
		{"wrong username", "admin", "hunter2", false},
		{"both empty", "", "", false},
		{"case sensitive", "Jazey", "hunter2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCredentials(admin, tt.username, tt.password))
		})
	}
}

func TestCheckCredentialsBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := config.AdminConfig{Username: "jazey", Password: string(hash)}

	assert.True(t, CheckCredentials(admin, "jazey", "hunter2"))
	assert.False(t, CheckCredentials(admin, "jazey", "wrong"))
}

func TestCheckCredentialsUnconfigured(t *testing.T) {
	assert.False(t, CheckCredentials(config.AdminConfig{}, "anything", "anything"),
		"an unconfigured admin rejects everything")
}
