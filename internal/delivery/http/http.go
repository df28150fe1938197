package http

import (
	"context"
	"net/http"
	"trading-signal-bot/internal/dto"

	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo *echo.Echo
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo: echo,
	}
}

// SetupRoutes exposes the liveness endpoints the hosting platform probes.
func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/", h.handleRoot)
	h.echo.GET("/health", h.handleHealth)
}

func (h *HttpAPIHandler) handleRoot(c echo.Context) error {
	return c.String(http.StatusOK, "bot is running")
}

func (h *HttpAPIHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "ok", nil))
}
