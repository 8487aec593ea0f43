package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lugo/pkg/serrors"
)

type createListingRequest struct {
	PropertyKey string          `json:"propertyKey"`
	Price       decimal.Decimal `json:"price"`
	CondoFee    decimal.Decimal `json:"condoFee"`
	PropertyTax decimal.Decimal `json:"propertyTax"`
}

func (h *handler) createListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	lst, err := h.deps.Listings.Create(c.Request().Context(),
		requesterAccountKey(c), req.PropertyKey, req.Price, req.CondoFee, req.PropertyTax)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, lst)
}

type alterListingRequest struct {
	Price       decimal.Decimal `json:"price"`
	CondoFee    decimal.Decimal `json:"condoFee"`
	PropertyTax decimal.Decimal `json:"propertyTax"`
}

func (h *handler) alterListing(c echo.Context) error {
	var req alterListingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	lst, err := h.deps.Listings.Alter(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"), req.Price, req.CondoFee, req.PropertyTax)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, lst)
}

func (h *handler) listingForProperty(c echo.Context) error {
	lst, err := h.deps.Listings.ForProperty(c.Request().Context(), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}
	if lst == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, lst)
}
