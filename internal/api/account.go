package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lugo/pkg/serrors"
)

type signUpRequest struct {
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Secret       string `json:"secret"`
	Confirmation string `json:"confirmation"`
}

func (h *handler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	acc, err := h.deps.Accounts.SignUp(c.Request().Context(),
		req.GivenName, req.FamilyName, req.CPF,
		req.Email, req.Secret, req.Confirmation)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, acc)
}

type loginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	ctx := c.Request().Context()

	acc, err := h.deps.Accounts.Authenticate(ctx, req.Email, req.Secret)
	if err != nil {
		return respondError(c, err)
	}

	token, err := h.deps.Sessions.Issue(ctx, acc.Key)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (h *handler) logout(c echo.Context) error {
	if err := h.deps.Sessions.Revoke(c.Request().Context(), bearerToken(c)); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type changePasswordRequest struct {
	Email        string `json:"email"`
	Secret       string `json:"secret"`
	Confirmation string `json:"confirmation"`
}

func (h *handler) changePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "malformed request body"))
	}

	acc, err := h.deps.Accounts.ChangePassword(c.Request().Context(),
		req.Email, req.Secret, req.Confirmation)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, acc)
}

func (h *handler) affiliatedCompany(c echo.Context) error {
	comp, err := h.deps.Accounts.AffiliatedCompany(c.Request().Context(), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}
	if comp == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, comp)
}
