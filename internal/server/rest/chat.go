package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

type chatCreate struct {
	UserID    string `json:"user_id" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

func (h *handler) chatbot(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := chatCreate{UserID: in.text("user_id"), CompanyID: in.text("company_id"), Message: in.text("message")}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	reply, err := h.chat.Chat(c.Request().Context(), domain.ChatRequest{
		UserID:    domain.UserID(req.UserID),
		CompanyID: domain.CompanyID(req.CompanyID),
		Message:   req.Message,
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Empresa no encontrada")
	case err != nil:
		h.log.Sugar().Errorw("assistant failed", "user_id", req.UserID, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "El asistente no está disponible")
	}
	return c.JSON(http.StatusOK, domain.ChatReply{Reply: reply})
}
