package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/infrastructure/backend"
	"github.com/mohammadpnp/admin-console/pkg/dto"
)

type UserHandler struct {
	api *backend.Client
}

func NewUserHandler(api *backend.Client) *UserHandler {
	return &UserHandler{api: api}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.api.ListUsers(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: users})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	u, err := h.api.GetUser(c.Request().Context(), tokenFrom(c), c.Param("id"))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: u})
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var patch dto.UserUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	u, err := h.api.UpdateUser(c.Request().Context(), tokenFrom(c), c.Param("id"), patch)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: u})
}

// backendError relays an already-normalized backend failure. The client
// guarantees err.Error() is a single presentable message.
func backendError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, apiResponse{Error: &errorBody{
		Code:    "backend_error",
		Message: err.Error(),
	}})
}
