package util

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "https://auth.example.com")
	token, err := tm.CreateToken(&JWTMessage{
		UserID:      "u1",
		Email:       "ada@example.com",
		Role:        model.RoleAdmin,
		WorkspaceID: "w1",
	}, time.Hour)
	require.NoError(t, err)

	msg, err := tm.CheckToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, model.RoleAdmin, msg.Role)
	assert.Equal(t, "w1", msg.WorkspaceID)
}

func TestCheckTokenRejects(t *testing.T) {
	tm := NewTokenManager("secret", "issuer-a")

	other, err := NewTokenManager("secret", "issuer-b").CreateToken(&JWTMessage{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = tm.CheckToken(other)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	wrongKey, err := NewTokenManager("other", "issuer-a").CreateToken(&JWTMessage{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = tm.CheckToken(wrongKey)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, err := tm.CreateToken(&JWTMessage{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)
	_, err = tm.CheckToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	anonymous, err := tm.CreateToken(&JWTMessage{}, time.Hour)
	require.NoError(t, err)
	_, err = tm.CheckToken(anonymous)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestCheckTokenDefaultsRole(t *testing.T) {
	tm := NewTokenManager("secret", "")
	token, err := tm.CreateToken(&JWTMessage{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	msg, err := tm.CheckToken(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, msg.Role)
}
