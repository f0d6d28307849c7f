package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"dante/internal/server/uploads"
)

// saveUpload stores the multipart file in field and returns its stored name,
// or "" when the request carries no such file.
func (h *handler) saveUpload(c echo.Context, field string) (string, error) {
	fh, err := formFile(c, field)
	if err != nil || fh == nil {
		return "", err
	}
	if !uploads.Allowed(fh.Filename) {
		return "", badRequest("Extensión de imagen no permitida")
	}
	if ct := fh.Header.Get(echo.HeaderContentType); ct != "" && !strings.HasPrefix(ct, "image/") && ct != "application/octet-stream" {
		return "", badRequest("El archivo debe ser una imagen")
	}
	f, err := fh.Open()
	if err != nil {
		return "", badRequest("Archivo inválido")
	}
	defer f.Close()

	name, err := h.files.Save(fh.Filename, f)
	if errors.Is(err, uploads.ErrExtension) {
		return "", badRequest("Extensión de imagen no permitida")
	}
	return name, err
}

// replaceUpload removes old after a record moved to a new file.
func (h *handler) replaceUpload(old, current string) {
	if old == "" || old == current {
		return
	}
	if err := h.files.Remove(old); err != nil {
		h.log.Warn("remove replaced upload", zap.String("name", old), zap.Error(err))
	}
}

// discardUpload removes a file saved for a request that then failed.
func (h *handler) discardUpload(name string) {
	if name == "" {
		return
	}
	if err := h.files.Remove(name); err != nil {
		h.log.Warn("remove orphan upload", zap.String("name", name), zap.Error(err))
	}
}

var errNoFile = echo.NewHTTPError(http.StatusBadRequest, "No se envió ningún archivo")
