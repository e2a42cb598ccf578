package echo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	httpecho "github.com/mohammadpnp/admin-console/internal/interfaces/http/echo"
)

type fakeSessions struct {
	invalidated []string
}

func (f *fakeSessions) Invalidate(userID string) {
	f.invalidated = append(f.invalidated, userID)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	e := echo.New()
	h := httpecho.NewAuthHandler(sessions, testSecret)
	e.POST("/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sessions.invalidated) != 1 || sessions.invalidated[0] != "u1" {
		t.Fatalf("unexpected invalidations: %v", sessions.invalidated)
	}
}

func TestLogoutWithoutToken(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	e := echo.New()
	h := httpecho.NewAuthHandler(sessions, testSecret)
	e.POST("/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(sessions.invalidated) != 0 {
		t.Fatal("nothing should be invalidated without a valid token")
	}
}
