package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken("user-1", "saria", RoleMember, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "saria", claims.Username)
	assert.Equal(t, string(RoleMember), claims.Role)
}

func TestValidateToken_Errors(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tests := []struct {
		name    string
		token   func() string
		wantErr error
	}{
		{
			name:    "garbage token",
			token:   func() string { return "not.a.token" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired token",
			token: func() string {
				tok, err := svc.GenerateToken("user-1", "saria", RoleMember, -time.Minute)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewService("other-secret", time.Hour)
				tok, err := other.GenerateToken("user-1", "saria", RoleAdmin, 0)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
