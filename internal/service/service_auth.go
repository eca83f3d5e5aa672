package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/utils"
	"github.com/MKhiriev/site-settings/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// There is a single administrator account, configured by login and bcrypt
// password hash.
type authService struct {
	// adminLogin is the only accepted login.
	adminLogin string

	// adminPasswordHash is the bcrypt hash of the administrator password.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the
// administrator account and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates the administrator.
//
// Returns the accepted login or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongPassword if the login is unknown or the password doesn't match.
//     Both cases look the same to the caller.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return "", ErrInvalidDataProvided
	}

	loginMatches := subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.adminLogin)) == 1
	err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(credentials.Password))
	if !loginMatches || err != nil {
		log.Warn().Str("login", credentials.Login).Msg("wrong login or password")
		return "", ErrWrongPassword
	}

	return a.adminLogin, nil
}

// CreateToken issues a signed JWT for the given login.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, login string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other validation failure
// (wrong issuer, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
