package echo

import e "github.com/labstack/echo/v4"

type Handlers struct {
	Import *ImportHandler
	User   *UserHandler
	Seller *SellerHandler
	Payout *PayoutHandler
	Auth   *AuthHandler
}

func RegisterRoutes(server *e.Echo, h Handlers, adminRequired e.MiddlewareFunc) {
	server.POST("/api/v1/auth/logout", h.Auth.Logout)

	admin := server.Group("/api/v1/admin", adminRequired)

	admin.POST("/transactions/import", h.Import.ImportTransactions)
	admin.GET("/transactions/template", h.Import.DownloadTemplate)

	admin.GET("/users", h.User.ListUsers)
	admin.GET("/users/:id", h.User.GetUser)
	admin.PATCH("/users/:id", h.User.UpdateUser)

	admin.GET("/sellers", h.Seller.ListSellers)
	admin.POST("/sellers/:id/verify", h.Seller.VerifySeller)
	admin.POST("/sellers/:id/suspend", h.Seller.SuspendSeller)

	admin.GET("/payouts", h.Payout.ListPayouts)
	admin.POST("/payouts/:id/approve", h.Payout.ApprovePayout)
	admin.POST("/payouts/:id/reject", h.Payout.RejectPayout)
	admin.POST("/payouts/:id/complete", h.Payout.CompletePayout)
}
