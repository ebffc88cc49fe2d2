package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateOwnerToken("01OWNER", "traveler", "secret", "lakbay", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateOwnerToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "01OWNER", claims.OwnerKey)
	assert.Equal(t, "traveler", claims.Role)
	assert.Equal(t, "lakbay", claims.Issuer)
}

func TestOwnerTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateOwnerToken("01OWNER", "traveler", "secret", "lakbay", time.Hour)
	require.NoError(t, err)

	_, err = ValidateOwnerToken(token, "other-secret")
	assert.Error(t, err)
}

func TestOwnerTokenExpired(t *testing.T) {
	t.Parallel()

	token, err := GenerateOwnerToken("01OWNER", "traveler", "secret", "lakbay", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateOwnerToken(token, "secret")
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ValidateOwnerToken("not.a.token", "secret")
	assert.Error(t, err)
}

func TestGenerateULIDDistinct(t *testing.T) {
	t.Parallel()

	a := GenerateULID()
	b := GenerateULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
