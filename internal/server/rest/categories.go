package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

type categoryCreate struct {
	Name      string `json:"name" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
	Kind      int    `json:"typeon" validate:"oneof=0 1 2"`
}

const categoryNotFound = "Categoría no encontrada"

func (h *handler) createCategory(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := categoryCreate{Name: in.text("name"), CompanyID: in.text("company_id")}
	if k := in.integer("typeon"); k != nil {
		req.Kind = *k
	}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	image, err := h.saveUpload(c, "image")
	if err != nil {
		return err
	}
	category, err := h.store.CreateCategory(c.Request().Context(), domain.Category{
		ID:          domain.CategoryID(uuid.NewString()),
		CompanyID:   domain.CompanyID(req.CompanyID),
		Kind:        domain.CategoryKind(req.Kind),
		Name:        req.Name,
		Description: in.text("description"),
		Image:       image,
	})
	if err != nil {
		h.discardUpload(image)
		if errors.Is(err, storage.ErrConflict) {
			return badRequest("Categoría ya registrada")
		}
		return storageErr(err, categoryNotFound)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *handler) listCategories(c echo.Context) error {
	f := storage.CategoryFilter{CompanyID: domain.CompanyID(c.QueryParam("company_id"))}
	if s := c.QueryParam("typeon"); s != "" {
		k, err := strconv.Atoi(s)
		if err != nil {
			return badRequest("typeon inválido")
		}
		f.Kind = domain.CategoryKind(k)
	}
	categories, err := h.store.ListCategories(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *handler) getCategory(c echo.Context) error {
	category, err := h.store.GetCategory(c.Request().Context(), domain.CategoryID(c.Param("id")))
	if err != nil {
		return storageErr(err, categoryNotFound)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *handler) updateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	category, err := h.store.GetCategory(ctx, domain.CategoryID(c.Param("id")))
	if err != nil {
		return storageErr(err, categoryNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}
	if in.has("name") {
		category.Name = in.text("name")
	}
	if in.has("description") {
		category.Description = in.text("description")
	}
	if err := in.Err(); err != nil {
		return err
	}
	if category.Name == "" {
		return badRequest("Faltan campos obligatorios: name")
	}

	image, err := h.saveUpload(c, "image")
	if err != nil {
		return err
	}
	old := category.Image
	if image != "" {
		category.Image = image
	}
	updated, err := h.store.UpdateCategory(ctx, category)
	if err != nil {
		h.discardUpload(image)
		if errors.Is(err, storage.ErrConflict) {
			return badRequest("Categoría ya registrada")
		}
		return storageErr(err, categoryNotFound)
	}
	if image != "" {
		h.replaceUpload(old, image)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.CategoryID(c.Param("id"))
	category, err := h.store.GetCategory(ctx, id)
	if err != nil {
		return storageErr(err, categoryNotFound)
	}
	if err := h.store.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return echo.NewHTTPError(http.StatusConflict, "La categoría tiene productos asociados")
		}
		return storageErr(err, categoryNotFound)
	}
	h.discardUpload(category.Image)
	return c.NoContent(http.StatusNoContent)
}
