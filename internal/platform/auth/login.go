package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginHandler authenticates the configured admin identity and returns a
// signed access token.
func LoginHandler(tokens *TokenManager, adminEmail, adminPassword string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		emailOK := strings.EqualFold(req.Email, adminEmail)
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) == 1
		if !emailOK || !passOK {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}

		token, exp, err := tokens.Issue(adminEmail, "admin")
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not issue token")
		}

		return c.JSON(http.StatusOK, loginResponse{
			Token:     token,
			ExpiresAt: exp.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Email:     adminEmail,
			Role:      "admin",
		})
	}
}
