package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminScheme = "adminBearer"
	adminRole   = "admin"
	roleClaim   = "role"
)

var (
	ErrMissingToken  = errors.New("bearer token is required")
	ErrInvalidToken  = errors.New("bearer token is invalid")
	ErrForbidden     = errors.New("admin role is required")
	ErrAdminDisabled = errors.New("admin access is not configured")
)

// AdminAuthenticator checks the adminBearer scheme: an HMAC-signed JWT whose
// role claim is "admin". An empty secret rejects every admin request.
func AdminAuthenticator(secret []byte) openapi3filter.AuthenticationFunc {
	return func(_ context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != adminScheme {
			return fmt.Errorf("security scheme %q is not supported", input.SecuritySchemeName)
		}
		if len(secret) == 0 {
			return ErrAdminDisabled
		}

		raw, ok := bearerToken(input.RequestValidationInput.Request)
		if !ok {
			return ErrMissingToken
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		if !token.Valid {
			return ErrInvalidToken
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ErrInvalidToken
		}
		if role, _ := claims[roleClaim].(string); role != adminRole {
			return ErrForbidden
		}
		return nil
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
