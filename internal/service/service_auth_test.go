package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/utils"
)

const (
	testSignKey = "auth-test-sign-key"
	testIssuer  = "learnsync-auth"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.ServerApp{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, testLogger())
}

func TestParseToken_Valid(t *testing.T) {
	svc := newTestAuthSvc()

	tokenString, err := utils.GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	userID, err := svc.ParseToken(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseToken_Expired(t *testing.T) {
	svc := newTestAuthSvc()

	tokenString, err := utils.GenerateJWTToken(testIssuer, 42, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), tokenString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	svc := newTestAuthSvc()

	tokenString, err := utils.GenerateJWTToken(testIssuer, 42, time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), tokenString)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	svc := newTestAuthSvc()

	tokenString, err := utils.GenerateJWTToken("unknown-issuer", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), tokenString)
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthSvc()

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.Error(t, err)
}
