package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"dante/internal/server/storage"
)

type messageBody struct {
	Message string `json:"message"`
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, messageBody{Message: msg})
}

// errorHandler renders every error as {"message": ...}. Unexpected errors are
// logged and reported as 500 without detail.
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := "Error interno del servidor"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			default:
				msg = fmt.Sprint(m)
			}
		} else {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = message(c, status, msg)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}

// storageErr maps storage sentinels to HTTP errors. notFound is the message
// used for ErrNotFound; other unmapped errors pass through as 500s.
func storageErr(err error, notFound string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	case errors.Is(err, storage.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "El registro ya existe")
	case errors.Is(err, storage.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusBadRequest, "Referencia inválida")
	}
	return err
}

func badRequest(msg string) error { return echo.NewHTTPError(http.StatusBadRequest, msg) }
