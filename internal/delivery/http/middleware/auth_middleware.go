package middleware

import (
	"errors"
	"strings"

	"career-compass/internal/pkg/token"

	"github.com/gofiber/fiber/v3"
)

const CtxRoleKey = "role"

type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware guards admin endpoints: a valid bearer token with the admin
// role is required.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(raw)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.Role != token.RoleAdmin {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}

		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}

	return tok, true
}
