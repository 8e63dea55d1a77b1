package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickazee/jobtrack/internal/apperrors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 24)

	token, err := svc.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidate_ExpiredToken(t *testing.T) {
	// Negative TTL makes the token already expired at issue time.
	svc := NewTokenService("test-secret", -1)

	token, err := svc.Issue("user-1")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", 24).Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", 24).Validate(token)
	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", 24)

	_, err := svc.Validate("not.a.token")
	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}
