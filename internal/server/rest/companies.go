package rest

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/auth"
	"dante/internal/server/storage"
)

type credentialsRequest struct {
	Email    string
	Password string
}

func (h *handler) createCompany(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := domain.CompanyRegistration{
		Name:        in.text("name"),
		Email:       in.text("email"),
		Password:    in.raw("password"),
		Phone:       in.text("phone"),
		CompanyName: in.text("company_name"),
		RIF:         in.text("rif"),
		Address:     in.text("address"),
	}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	company, err := h.store.CreateCompany(c.Request().Context(), domain.Company{
		ID:          domain.CompanyID(uuid.NewString()),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		RIF:         req.RIF,
		Address:     req.Address,
	}, hash)
	if errors.Is(err, storage.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "Email ya registrado")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *handler) loginCompany(c echo.Context) error {
	req, err := readCredentials(c)
	if err != nil {
		return err
	}
	company, hash, err := h.store.CompanyByEmail(c.Request().Context(), req.Email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err != nil || !auth.CheckPassword(hash, req.Password) {
		h.metrics.RecordLogin(string(auth.KindCompany), false)
		return echo.NewHTTPError(http.StatusUnauthorized, "Credenciales inválidas")
	}
	token, err := h.tokens.Issue(auth.KindCompany, company.ID.String())
	if err != nil {
		return err
	}
	h.metrics.RecordLogin(string(auth.KindCompany), true)
	return c.JSON(http.StatusOK, domain.CompanyLogin{AccessToken: token, Company: company})
}

func (h *handler) listCompanies(c echo.Context) error {
	companies, err := h.store.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

func readCredentials(c echo.Context) (credentialsRequest, error) {
	in, err := readInput(c)
	if err != nil {
		return credentialsRequest{}, err
	}
	req := credentialsRequest{Email: in.text("email"), Password: in.raw("password")}
	if err := in.Err(); err != nil {
		return req, err
	}
	if req.Email == "" || req.Password == "" {
		return req, badRequest("Email y contraseña son obligatorios")
	}
	return req, nil
}
