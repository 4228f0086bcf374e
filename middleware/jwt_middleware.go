package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"pulse/config"
)

const userContextKey contextKey = "pulseUser"

type contextKey string

var (
	errNoSecret        = errors.New("auth secret not configured")
	errMissingToken    = errors.New("missing bearer token")
	errInvalidToken    = errors.New("invalid bearer token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// UserClaims represents the JWT claims carried by the auth collaborator's
// bearer tokens.
type UserClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserContext holds user information extracted from the token.
type UserContext struct {
	ID    string
	Email string
	Role  string
}

// JWTAuthMiddleware validates bearer tokens issued by the external auth
// service. Token issuance itself lives outside this service.
type JWTAuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewJWTAuthMiddleware(logger *slog.Logger, cfg *config.Config) *JWTAuthMiddleware {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("AUTH_TOKEN_SECRET not set, JWT auth will deny all requests")
	}

	return &JWTAuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.Auth.TokenIssuer,
		audience: cfg.Auth.TokenAudience,
	}
}

// RequireJWT ensures a valid bearer token is present before allowing the
// request to proceed.
func (m *JWTAuthMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userCtx, err := m.validateRequest(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
				case errors.Is(err, jwt.ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token expired")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims),
					errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
				case errors.Is(err, errNoSecret):
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				default:
					if m.logger != nil {
						m.logger.Error("JWT validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := context.WithValue(c.Request().Context(), userContextKey, userCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *JWTAuthMiddleware) validateRequest(c echo.Context) (*UserContext, error) {
	// HMAC verification with an empty key would accept tokens signed with an
	// empty secret, so an unconfigured secret denies outright.
	if len(m.secret) == 0 {
		return nil, errNoSecret
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, errMissingToken
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid {
		return nil, errInvalidToken
	}

	if claims.Subject == "" {
		return nil, errInvalidClaims
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}
	if m.audience != "" && !audienceContains(claims.Audience, m.audience) {
		return nil, errInvalidAudience
	}

	return &UserContext{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

func audienceContains(audience jwt.ClaimStrings, want string) bool {
	for _, a := range audience {
		if a == want {
			return true
		}
	}
	return false
}

// GetUserFromContext returns the authenticated user attached by RequireJWT.
func GetUserFromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}
