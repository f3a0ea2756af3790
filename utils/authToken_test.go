package utils

import (
	"HRAS/models"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// 32-byte key required by PASETO v2 symmetric encryption.
	_ = os.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func TestGenerateAndValidateTokens(t *testing.T) {
	accessToken, refreshToken, err := GenerateTokens("42", models.RoleDoctor, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.Equal(t, int64(7), claims.HospitalID)
}

func TestValidateTokenRoleCheck(t *testing.T) {
	token, err := GenerateAccessToken("9", models.RoleNurse, 3)
	require.NoError(t, err)

	// Matching role passes.
	_, err = ValidateToken(token, models.RoleNurse)
	assert.NoError(t, err)

	// Any-of semantics.
	_, err = ValidateToken(token, models.RoleDoctor, models.RoleNurse)
	assert.NoError(t, err)

	// Non-matching role is rejected.
	_, err = ValidateToken(token, models.RoleAdmin)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}
