package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// SessionIDKey is the c.Locals key holding the current session id.
const SessionIDKey = "session_id"

// startedKey marks a session whose activity log has been initialized. Setting
// it makes the session middleware issue the cookie on the first response.
const startedKey = "activity_started_at"

// TrackSession resolves the browser session once per request and exposes its
// id to handlers. It must run after the session middleware.
func TrackSession(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Next()
	}

	if sess.Get(startedKey) == nil {
		sess.Set(startedKey, time.Now().UTC().Format(time.RFC3339))
	}

	c.Locals(SessionIDKey, sess.ID())
	return c.Next()
}

// SessionID returns the session id resolved by TrackSession, or "".
func SessionID(c fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
