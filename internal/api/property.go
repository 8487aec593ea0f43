package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lugo/pkg/serrors"
)

type registerPropertyRequest struct {
	Address      string `json:"address"`
	SquareMeters *int   `json:"squareMeters"`
	OwnerKey     string `json:"ownerKey"`
}

func (h *handler) registerProperty(c echo.Context) error {
	var req registerPropertyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	prop, err := h.deps.Properties.Register(c.Request().Context(),
		requesterAccountKey(c), req.Address, req.SquareMeters, req.OwnerKey)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, prop)
}

type alterPropertyRequest struct {
	Address      string `json:"address"`
	SquareMeters *int   `json:"squareMeters"`
}

func (h *handler) alterProperty(c echo.Context) error {
	var req alterPropertyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	prop, err := h.deps.Properties.Alter(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"), req.Address, req.SquareMeters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, prop)
}

func (h *handler) propertyOwner(c echo.Context) error {
	owner, err := h.deps.Properties.Owner(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, owner)
}

func (h *handler) propertiesOfOwner(c echo.Context) error {
	props, err := h.deps.Properties.OfOwner(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, props)
}
