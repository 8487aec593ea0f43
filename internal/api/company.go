package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lugo/pkg/serrors"
)

type companyRequest struct {
	TradeName string `json:"tradeName"`
	LegalName string `json:"legalName"`
	CNPJ      string `json:"cnpj"`
}

func (h *handler) createCompany(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	comp, err := h.deps.Companies.Create(c.Request().Context(),
		requesterAccountKey(c), req.TradeName, req.LegalName, req.CNPJ)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, comp)
}

func (h *handler) alterCompany(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	comp, err := h.deps.Companies.Alter(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"), req.TradeName, req.LegalName, req.CNPJ)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, comp)
}

func (h *handler) companyClients(c echo.Context) error {
	clients, err := h.deps.Companies.Clients(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, clients)
}

type clientRequest struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	CPF        string `json:"cpf"`
}

func (h *handler) registerClient(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	client, err := h.deps.Companies.RegisterClient(c.Request().Context(),
		requesterAccountKey(c), req.GivenName, req.FamilyName, req.CPF)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, client)
}

func (h *handler) alterClient(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	client, err := h.deps.Companies.AlterClient(c.Request().Context(),
		requesterAccountKey(c), c.Param("key"), req.GivenName, req.FamilyName, req.CPF)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, client)
}
