package echo

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/application/auth"
)

const (
	contextKeyUserID = "user_id"
	contextKeyToken  = "token"
)

// Authorizer is the session gate as the middleware consumes it.
type Authorizer interface {
	Authorize(ctx context.Context, userID string) (auth.Decision, error)
}

// AdminRequired verifies the bearer token and runs the session gate before
// any protected handler. Missing or invalid credentials are 401; a valid
// identity without the admin flag is 403. Denials are never retried here.
func AdminRequired(secret string, gate Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, token, err := parseBearer(c, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "a valid bearer token is required",
				}})
			}

			decision, err := gate.Authorize(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
					Code:    "internal_error",
					Message: "authorization check failed",
				}})
			}
			if decision != auth.DecisionGranted {
				return c.JSON(http.StatusForbidden, apiResponse{Error: &errorBody{
					Code:    "forbidden",
					Message: "administrator access required",
				}})
			}

			c.Set(contextKeyUserID, userID)
			c.Set(contextKeyToken, token)
			return next(c)
		}
	}
}

func parseBearer(c echo.Context, secret string) (userID, token string, err error) {
	header := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "", echo.ErrUnauthorized
	}

	token = strings.TrimPrefix(header, "Bearer ")

	var claims jwt.StandardClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return "", "", err
	}
	if claims.Subject == "" {
		return "", "", echo.ErrUnauthorized
	}

	return claims.Subject, token, nil
}

func tokenFrom(c echo.Context) string {
	token, _ := c.Get(contextKeyToken).(string)
	return token
}
