package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/donatinator/donatinator/internal/pkg/session"
	"github.com/donatinator/donatinator/internal/pkg/usercontext"
)

// AccountContextMiddleware resolves the session into an account context for
// every request, so controllers never touch the session store directly.
func AccountContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals("ACCOUNT_CONTEXT", usercontext.AccountContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	store := session.GetSessionStore()
	if store == nil {
		return anonymous()
	}

	sess, err := store.Get(c)
	if err != nil {
		return anonymous()
	}

	rawID := sess.Get(usercontext.KeyAccountID)
	if rawID == nil {
		return anonymous()
	}

	accountID, ok := rawID.(uint)
	if !ok {
		// Session storages round-trip values as strings.
		if s, isStr := rawID.(string); isStr {
			if parsed, err := strconv.ParseUint(s, 10, 32); err == nil {
				accountID = uint(parsed)
				ok = true
			}
		}
	}
	if !ok || accountID == 0 {
		return anonymous()
	}

	ctx := usercontext.AccountContext{
		AccountID:  accountID,
		Email:      session.GetSessionValue(c, usercontext.KeyAccountEmail),
		Title:      session.GetSessionValue(c, usercontext.KeyAccountTitle),
		IsLoggedIn: true,
	}
	c.Locals("ACCOUNT_CONTEXT", ctx)
	c.Locals(usercontext.KeyFromProtected, true)

	return c.Next()
}
