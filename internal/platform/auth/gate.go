// Package auth implements the dashboard's access gate: a configured
// 4-digit code exchanged for a short-lived signed session token. This
// is a convenience latch for a single-user dashboard, not a security
// control; the token just carries the "unlocked" signal across
// requests.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrWrongCode is returned by Unlock when the code does not match.
var ErrWrongCode = errors.New("wrong access code")

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 12 * time.Hour

const tokenSubject = "dashboard"

// Gate issues and verifies session tokens.
type Gate struct {
	code       string
	signingKey []byte
}

// NewGate returns a Gate for the configured access code and signing key.
func NewGate(code string, signingKey []byte) *Gate {
	return &Gate{code: code, signingKey: signingKey}
}

// Unlock exchanges the access code for a signed HS256 token.
func (g *Gate) Unlock(code string) (string, error) {
	if code != g.code {
		return "", ErrWrongCode
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token string.
func (g *Gate) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return g.signingKey, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != tokenSubject {
		return errors.New("invalid session token")
	}
	return nil
}

// UnlockHandler returns the POST handler exchanging the access code
// for a session token.
func (g *Gate) UnlockHandler() echo.HandlerFunc {
	type unlockRequest struct {
		Code string `json:"code"`
	}
	return func(c echo.Context) error {
		var req unlockRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		token, err := g.Unlock(req.Code)
		if err != nil {
			if errors.Is(err, ErrWrongCode) {
				return echo.NewHTTPError(http.StatusUnauthorized, "wrong access code")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "could not issue session token")
		}

		return c.JSON(http.StatusOK, map[string]string{"token": token})
	}
}

// Middleware returns an echo middleware that rejects requests without a
// valid Bearer session token.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			if err := g.Verify(tokenString); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session token")
			}
			return next(c)
		}
	}
}
