package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

type productCreate struct {
	Name       string   `json:"name" validate:"required"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	Stock      *int     `json:"stock" validate:"required,gte=0"`
	CategoryID string   `json:"category_id" validate:"required"`
	CompanyID  string   `json:"company_id" validate:"required"`
}

const productNotFound = "Producto no encontrado"

func (h *handler) createProduct(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := productCreate{
		Name:       in.text("name"),
		Price:      in.float("price"),
		Stock:      in.integer("stock"),
		CategoryID: in.text("category_id"),
		CompanyID:  in.text("company_id"),
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
	product, err := h.store.CreateProduct(c.Request().Context(), domain.Product{
		ID:          domain.ProductID(uuid.NewString()),
		CompanyID:   domain.CompanyID(req.CompanyID),
		CategoryID:  domain.CategoryID(req.CategoryID),
		Name:        req.Name,
		Description: in.text("description"),
		Price:       *req.Price,
		Stock:       *req.Stock,
		Image:       image,
		IsActive:    true,
	})
	if err != nil {
		h.discardUpload(image)
		return storageErr(err, productNotFound)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *handler) listProducts(c echo.Context) error {
	products, err := h.store.ListProducts(c.Request().Context(), storage.ProductFilter{
		CompanyID:  domain.CompanyID(c.QueryParam("company_id")),
		CategoryID: domain.CategoryID(c.QueryParam("category_id")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *handler) getProduct(c echo.Context) error {
	p, err := h.store.GetProduct(c.Request().Context(), domain.ProductID(c.Param("id")))
	if err != nil {
		return storageErr(err, productNotFound)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *handler) updateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.store.GetProduct(ctx, domain.ProductID(c.Param("id")))
	if err != nil {
		return storageErr(err, productNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}
	if in.has("name") {
		p.Name = in.text("name")
	}
	if in.has("description") {
		p.Description = in.text("description")
	}
	if in.has("category_id") {
		p.CategoryID = domain.CategoryID(in.text("category_id"))
	}
	if v := in.float("price"); v != nil {
		p.Price = *v
	}
	if v := in.integer("stock"); v != nil {
		p.Stock = *v
	}
	if v := in.boolean("is_active"); v != nil {
		p.IsActive = *v
	}
	if err := in.Err(); err != nil {
		return err
	}
	if p.Name == "" || p.CategoryID == "" {
		return badRequest("Faltan campos obligatorios")
	}
	if p.Price < 0 || p.Stock < 0 {
		return badRequest("Campos inválidos: price, stock")
	}

	image, err := h.saveUpload(c, "image")
	if err != nil {
		return err
	}
	old := p.Image
	if image != "" {
		p.Image = image
	}
	updated, err := h.store.UpdateProduct(ctx, p)
	if err != nil {
		h.discardUpload(image)
		return storageErr(err, productNotFound)
	}
	if image != "" {
		h.replaceUpload(old, image)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.ProductID(c.Param("id"))
	p, err := h.store.GetProduct(ctx, id)
	if err != nil {
		return storageErr(err, productNotFound)
	}
	if err := h.store.DeleteProduct(ctx, id); err != nil {
		return storageErr(err, productNotFound)
	}
	h.discardUpload(p.Image)
	return c.NoContent(http.StatusNoContent)
}
