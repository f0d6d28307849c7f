package rest

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

type clientCreate struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CompanyID string `json:"company_id" validate:"required"`
}

const clientNotFound = "Cliente no encontrado"

func (h *handler) createClient(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := clientCreate{Name: in.text("name"), Email: in.text("email"), CompanyID: in.text("company_id")}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	client, err := h.store.CreateClient(c.Request().Context(), domain.Client{
		ID:             domain.ClientID(uuid.NewString()),
		CompanyID:      domain.CompanyID(req.CompanyID),
		CategoryID:     domain.CategoryID(in.text("category_id")),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          in.text("phone"),
		Address:        in.text("address"),
		DocumentType:   in.text("document_type"),
		DocumentNumber: in.text("document_number"),
		Avatar:         avatar,
		IsActive:       true,
	})
	if err != nil {
		h.discardUpload(avatar)
		if errors.Is(err, storage.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, "Email o documento de cliente ya registrado")
		}
		return storageErr(err, clientNotFound)
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *handler) listClients(c echo.Context) error {
	company := c.QueryParam("company_id")
	if company == "" {
		return badRequest("company_id es requerido")
	}
	clients, err := h.store.ListClients(c.Request().Context(), domain.CompanyID(company))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *handler) getClient(c echo.Context) error {
	client, err := h.store.GetClient(c.Request().Context(), domain.ClientID(c.Param("id")))
	if err != nil {
		return storageErr(err, clientNotFound)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *handler) updateClient(c echo.Context) error {
	ctx := c.Request().Context()
	client, err := h.store.GetClient(ctx, domain.ClientID(c.Param("id")))
	if err != nil {
		return storageErr(err, clientNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}
	for key, dst := range map[string]*string{
		"name":            &client.Name,
		"email":           &client.Email,
		"phone":           &client.Phone,
		"address":         &client.Address,
		"document_type":   &client.DocumentType,
		"document_number": &client.DocumentNumber,
	} {
		if in.has(key) {
			*dst = in.text(key)
		}
	}
	if in.has("category_id") {
		client.CategoryID = domain.CategoryID(in.text("category_id"))
	}
	if v := in.boolean("is_active"); v != nil {
		client.IsActive = *v
	}
	if err := in.Err(); err != nil {
		return err
	}
	if client.Name == "" {
		return badRequest("Faltan campos obligatorios: name")
	}
	if err := validate.Var(client.Email, "required,email"); err != nil {
		return badRequest("Campos inválidos: email")
	}

	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	old := client.Avatar
	if avatar != "" {
		client.Avatar = avatar
	}
	updated, err := h.store.UpdateClient(ctx, client)
	if err != nil {
		h.discardUpload(avatar)
		return storageErr(err, clientNotFound)
	}
	if avatar != "" {
		h.replaceUpload(old, avatar)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteClient(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.ClientID(c.Param("id"))
	client, err := h.store.GetClient(ctx, id)
	if err != nil {
		return storageErr(err, clientNotFound)
	}
	if err := h.store.DeleteClient(ctx, id); err != nil {
		return storageErr(err, clientNotFound)
	}
	h.discardUpload(client.Avatar)
	return c.NoContent(http.StatusNoContent)
}
