package echo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/application/auth"
	httpecho "github.com/mohammadpnp/admin-console/internal/interfaces/http/echo"
)

const testSecret = "test-secret"

type decisionGate struct {
	decision auth.Decision
	err      error
	userID   string
}

func (g *decisionGate) Authorize(ctx context.Context, userID string) (auth.Decision, error) {
	g.userID = userID
	return g.decision, g.err
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: subject})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func protectedServer(gate httpecho.Authorizer) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, httpecho.AdminRequired(testSecret, gate))
	return e
}

func TestAdminRequiredNoToken(t *testing.T) {
	t.Parallel()

	e := protectedServer(&decisionGate{decision: auth.DecisionGranted})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRequiredBadSignature(t *testing.T) {
	t.Parallel()

	e := protectedServer(&decisionGate{decision: auth.DecisionGranted})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: "u1"})
	signed, err := token.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRequiredDenied(t *testing.T) {
	t.Parallel()

	gate := &decisionGate{decision: auth.DecisionDenied}
	e := protectedServer(gate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if gate.userID != "u1" {
		t.Fatalf("gate saw wrong user: %q", gate.userID)
	}
}

func TestAdminRequiredGranted(t *testing.T) {
	t.Parallel()

	e := protectedServer(allowAll{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
