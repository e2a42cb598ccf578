package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohammadpnp/admin-console/internal/application/auth"
	"github.com/mohammadpnp/admin-console/internal/application/importer"
	"github.com/mohammadpnp/admin-console/internal/application/payout"
	"github.com/mohammadpnp/admin-console/internal/config"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/backend"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/runlog"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/tabular"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/userstore"
	httpecho "github.com/mohammadpnp/admin-console/internal/interfaces/http/echo"
)

func NewHTTPServer(cfg *config.Config, db *gorm.DB, pool *pgxpool.Pool, api *backend.Client, poller *payout.Poller, log *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	users := userstore.New(db)
	runs := runlog.New(db, pool)

	importTransactions := importer.NewImportTransactions(tabular.NewParser(), users, api, runs, log)
	gate := auth.NewGate(users, cfg.SessionTTL, log)

	handlers := httpecho.Handlers{
		Import: httpecho.NewImportHandler(importTransactions),
		User:   httpecho.NewUserHandler(api),
		Seller: httpecho.NewSellerHandler(api),
		Payout: httpecho.NewPayoutHandler(api, poller),
		Auth:   httpecho.NewAuthHandler(gate, cfg.JWTSecret),
	}

	httpecho.RegisterRoutes(server, handlers, httpecho.AdminRequired(cfg.JWTSecret, gate))

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
