package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/infrastructure/backend"
)

type SellerHandler struct {
	api *backend.Client
}

func NewSellerHandler(api *backend.Client) *SellerHandler {
	return &SellerHandler{api: api}
}

func (h *SellerHandler) ListSellers(c echo.Context) error {
	sellers, err := h.api.ListSellers(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: sellers})
}

func (h *SellerHandler) VerifySeller(c echo.Context) error {
	if err := h.api.VerifySeller(c.Request().Context(), tokenFrom(c), c.Param("id")); err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"status": "verified"}})
}

func (h *SellerHandler) SuspendSeller(c echo.Context) error {
	if err := h.api.SuspendSeller(c.Request().Context(), tokenFrom(c), c.Param("id")); err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"status": "suspended"}})
}
