package auth

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler implements the single-credential admin login. The credential pair
// comes from configuration; there is no user table behind it.
type Handler struct {
	username string
	password string
	secret   []byte
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewHandler(username, password, secret string) *Handler {
	return &Handler{username: username, password: password, secret: []byte(secret)}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/login", h.login)
	app.Post("/api/logout", h.logout)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	userOK := subtle.ConstantTimeCompare([]byte(payload.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	now := time.Now().UTC()
	signed, err := issueToken(h.secret, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}
