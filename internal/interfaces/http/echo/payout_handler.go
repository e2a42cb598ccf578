package echo

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/application/payout"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/backend"
	"github.com/mohammadpnp/admin-console/pkg/dto"
)

type PayoutHandler struct {
	api    *backend.Client
	poller *payout.Poller
}

func NewPayoutHandler(api *backend.Client, poller *payout.Poller) *PayoutHandler {
	return &PayoutHandler{api: api, poller: poller}
}

type payoutQueueResponse struct {
	Payouts   []dto.Payout `json:"payouts"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// ListPayouts serves the poller's snapshot so the queue screen does not hit
// the backend on every navigation.
func (h *PayoutHandler) ListPayouts(c echo.Context) error {
	payouts, fetchedAt := h.poller.Snapshot()
	return c.JSON(http.StatusOK, apiResponse{Data: payoutQueueResponse{
		Payouts:   payouts,
		FetchedAt: fetchedAt,
	}})
}

func (h *PayoutHandler) ApprovePayout(c echo.Context) error {
	return h.mutate(c, h.api.ApprovePayout, "approved")
}

func (h *PayoutHandler) RejectPayout(c echo.Context) error {
	return h.mutate(c, h.api.RejectPayout, "rejected")
}

func (h *PayoutHandler) CompletePayout(c echo.Context) error {
	return h.mutate(c, h.api.CompletePayout, "completed")
}

// mutate runs one payout action with polling held, then refreshes the
// snapshot so the queue reflects the change immediately.
func (h *PayoutHandler) mutate(c echo.Context, action func(ctx context.Context, token, id string) error, status string) error {
	h.poller.Hold()
	defer h.poller.Release()

	ctx := c.Request().Context()
	if err := action(ctx, tokenFrom(c), c.Param("id")); err != nil {
		return backendError(c, err)
	}

	h.poller.Refresh(ctx)

	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"status": status}})
}
