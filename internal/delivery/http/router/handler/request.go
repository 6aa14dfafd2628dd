package handler

import (
	"strconv"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/delivery/http/response"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/usecase"

	"github.com/labstack/echo/v4"
)

// bind decodes the JSON body into dst and validates it. A non-nil return has
// already been written to the response or is an error for the error handler.
func bind(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(dst); err != nil {
		return false, err
	}

	return true, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// actor builds the use case caller from the verified token.
func actor(c echo.Context) (usecase.Actor, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthenticated
	}

	return usecase.Actor{
		UserID: claims.UserID,
		Role:   entity.RoleOrDefault(entity.Role(claims.Role)),
	}, nil
}
