package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/internal/pkg/session"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request
func UserContextMiddleware(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store == nil {
		usercontext.Set(c, usercontext.Anonymous())
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		// On error: set as anonymous user
		usercontext.Set(c, usercontext.Anonymous())
		return c.Next()
	}

	userID, ok := sess.Get(usercontext.KeyUserID).(uint)
	if !ok || userID == 0 {
		usercontext.Set(c, usercontext.Anonymous())
		return c.Next()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	usercontext.Set(c, usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})

	return c.Next()
}
