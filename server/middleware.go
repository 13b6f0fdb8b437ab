package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/R-Kri/AirlineManagementProject/auth"
)

const sessionLocalKey = "session"

// RequireSession extracts the bearer token and runs the full session check,
// including the subject-existence re-validation. Every rejection surfaces as
// the same opaque 401 whether the header is missing, the token is bad, or the
// subject was deleted; the distinction stays in server logs.
func (s *Server) RequireSession(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return unauthorized(c)
	}

	summary, err := s.sessions.CheckSession(c.UserContext(), token)
	if err != nil {
		if auth.IsStoreUnavailable(err) {
			s.logger.Error("session check hit unavailable store", "error", err)
			return errorResponse(c, err)
		}
		s.logger.Debug("session rejected", "error", err)
		return unauthorized(c)
	}

	c.Locals(sessionLocalKey, summary)
	return c.Next()
}

// RequireRole gates a route on a direct role-membership edge. Must run after
// RequireSession.
func (s *Server) RequireRole(role auth.RoleName) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, ok := SessionFrom(c)
		if !ok {
			return unauthorized(c)
		}

		member, err := s.roles.HasRole(c.UserContext(), summary.ID, role)
		if err != nil {
			if auth.IsAccountNotFound(err) {
				return unauthorized(c)
			}
			return errorResponse(c, err)
		}

		if !member {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}

		return c.Next()
	}
}

// SessionFrom returns the account summary RequireSession stored on the
// request.
func SessionFrom(c *fiber.Ctx) (auth.AccountSummary, bool) {
	summary, ok := c.Locals(sessionLocalKey).(auth.AccountSummary)
	return summary, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
