package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "fleetops",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "Test Driver", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, "fleetops", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "Test Driver", "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
