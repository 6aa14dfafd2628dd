package handler

import (
	"net/http"

	"messenger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DevHandler exposes development maintenance. Only mounted when devRoutes.enabled is set.
type DevHandler struct {
	uc usecase.DevUsecase
}

func NewDevHandler(uc usecase.DevUsecase) *DevHandler {
	return &DevHandler{uc: uc}
}

// ResetDatabase handles POST /api/dev/reset-database.
func (h *DevHandler) ResetDatabase(c echo.Context) error {
	if err := h.uc.ResetDatabase(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
