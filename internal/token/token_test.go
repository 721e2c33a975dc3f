package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/marketplace-api/internal/token"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	tok, err := svc.Issue("user-123", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestVerifyFailures(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	valid, err := svc.Issue("user-123", "a@b.com")
	require.NoError(t, err)

	otherSecret := token.NewService("other-secret", time.Hour)
	forged, err := otherSecret.Issue("user-123", "a@b.com")
	require.NoError(t, err)

	expiredSvc := token.NewService("test-secret", -time.Minute)
	expired, err := expiredSvc.Issue("user-123", "a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		wantErr     bool
	}{
		{"valid token", valid, false},
		{"empty string", "", true},
		{"garbage", "not.a.token", true},
		{"wrong secret", forged, true},
		{"past expiry", expired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.tokenString)
			if tt.wantErr {
				assert.ErrorIs(t, err, token.ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-123", claims.UserID)
		})
	}
}

func TestTokenValidUntilExpiryInstant(t *testing.T) {
	// A very short expiry flips verification from success to failure.
	svc := token.NewService("test-secret", time.Second)

	tok, err := svc.Issue("user-123", "a@b.com")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
