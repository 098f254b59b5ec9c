package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/constants"
	"github.com/donatinator/donatinator/internal/pkg/session"
	"github.com/donatinator/donatinator/internal/pkg/usercontext"
)

// HandleSignIn renders the sign-in form and, on POST, checks the password
// against the stored bcrypt hash and starts the admin session.
func HandleSignIn(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{"type": "error"}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		account, err := repository.GetGlobalRepositories().Account.GetByEmail(c.FormValue("email"))
		if err != nil || account == nil || !account.CanSignIn() {
			fm["message"] = "There is a problem with the sign in process"
			return flash.WithError(c, fm).Redirect(constants.SignInRoute)
		}

		if !models.CheckPasswordHash(c.FormValue("password"), *account.Password) {
			fm["message"] = "There is a problem with the sign in process"
			return flash.WithError(c, fm).Redirect(constants.SignInRoute)
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect(constants.SignInRoute)
		}

		sess.Set(usercontext.KeyAccountID, strconv.FormatUint(uint64(account.ID), 10))
		sess.Set(usercontext.KeyAccountEmail, account.Email)
		sess.Set(usercontext.KeyAccountTitle, account.Title)

		if err := sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect(constants.SignInRoute)
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}
		return flash.WithSuccess(c, fm).Redirect(constants.AdminRoute)
	}

	return render(c, "sign_in", fiber.Map{
		"Title": "Sign In",
	})
}

// HandleSignOut destroys the admin session.
func HandleSignOut(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": fmt.Sprintf("something went wrong: %s", err),
		}
		return flash.WithError(c, fm).Redirect(constants.PublicRoute)
	}

	c.Locals(usercontext.KeyFromProtected, false)

	fm := fiber.Map{
		"type":    "success",
		"message": "You have been signed out.",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.PublicRoute)
}
