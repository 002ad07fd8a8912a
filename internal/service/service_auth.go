package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/utils"
)

// authService is the concrete implementation of AuthService. It verifies
// HMAC-SHA256 JWT tokens against the configured sign key and issuer.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens from any other
	// issuer are rejected.
	tokenIssuer string

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the server security
// settings. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken implements AuthService.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	userID, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenIsExpired
		}

		log.Err(err).Msg("token validation failed")
		return 0, fmt.Errorf("token validation failed: %w", err)
	}

	return userID, nil
}
