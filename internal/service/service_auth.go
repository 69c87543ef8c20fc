package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// adminSubject is the "sub" claim of every admin session JWT.
const adminSubject = "admin"

// authService is the concrete implementation of [AuthService]. Admin access
// uses a single shared token exchanged for a short-lived session JWT; there
// are no user accounts.
type authService struct {
	// adminToken is the shared secret presented at login. Empty disables
	// the whole admin surface.
	adminToken string

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the application security
// parameters. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminToken:    cfg.AdminToken,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Enabled implements [AuthService].
func (a *authService) Enabled() bool {
	return a.adminToken != ""
}

// AdminLogin implements [AuthService]. The comparison is constant-time so
// response timing leaks nothing about the configured token.
func (a *authService) AdminLogin(ctx context.Context, token string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		return models.Token{}, ErrAdminDisabled
	}

	if !utils.SecureCompare(token, a.adminToken, a.tokenSignKey) {
		log.Warn().Str("func", "*authService.AdminLogin").Msg("admin login rejected")
		return models.Token{}, ErrWrongAdminToken
	}

	issued, err := utils.GenerateJWTToken(a.tokenIssuer, adminSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("func", "*authService.AdminLogin").Msg("admin session issued")

	return issued, nil
}

// ParseToken implements [AuthService]. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
