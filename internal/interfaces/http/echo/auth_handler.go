package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionInvalidator is the slice of the session gate the logout endpoint
// needs.
type SessionInvalidator interface {
	Invalidate(userID string)
}

type AuthHandler struct {
	sessions SessionInvalidator
	secret   string
}

func NewAuthHandler(sessions SessionInvalidator, secret string) *AuthHandler {
	return &AuthHandler{sessions: sessions, secret: secret}
}

// Logout drops the caller's cached authorization so the next check goes back
// to the user store. Token validity is still required; an anonymous caller
// has nothing to invalidate.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _, err := parseBearer(c, h.secret)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
			Code:    "unauthorized",
			Message: "a valid bearer token is required",
		}})
	}

	h.sessions.Invalidate(userID)

	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"status": "logged_out"}})
}
