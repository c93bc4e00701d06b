package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "catalogadmin/internal/log"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// fall back to the cookie so the hidden field is never empty
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// notFound renders the friendly error page used across the admin.
func notFound(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render("notfound", fiber.Map{"Message": msg})
}

// FriendlyError is the app-wide error handler: log the cause, show a generic page.
func FriendlyError(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
	}
	// Avoid leaking internals; best-effort render
	if rerr := c.Status(code).Render("notfound", fiber.Map{
		"Message": "Algo salió mal. Intente nuevamente.",
	}); rerr != nil {
		return c.Status(code).SendString("Algo salió mal. Intente nuevamente.")
	}
	return nil
}
