package domain

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FixedAdminVerifier_Accepts_The_Exact_Credential_Pair(t *testing.T) {
	// Arrange
	verifier, err := NewFixedAdminVerifier("admin@admin.com", "admin", NewPasswordHasher(sha256.New))
	require.NoError(t, err)

	// Act + Assert
	require.True(t, verifier.Verify("admin@admin.com", "admin"))
}

func Test_FixedAdminVerifier_Rejects_Everything_Else(t *testing.T) {
	// Arrange
	verifier, err := NewFixedAdminVerifier("admin@admin.com", "admin", NewPasswordHasher(sha256.New))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "someone@else.com", password: "admin"},
		{name: "right email wrong password", email: "admin@admin.com", password: "admin1"},
		{name: "right password wrong email", email: "admin@admin.co", password: "admin"},
		{name: "empty pair", email: "", password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, verifier.Verify(tc.email, tc.password))
		})
	}
}
