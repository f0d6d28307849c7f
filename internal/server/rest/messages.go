package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
)

type messageCreate struct {
	SenderID   string `json:"sender_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

const messageNotFound = "Mensaje no encontrado"

func (h *handler) sendMessage(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := messageCreate{
		SenderID:   in.text("sender_id"),
		ReceiverID: in.text("receiver_id"),
		Content:    in.text("content"),
	}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	m, err := h.store.CreateMessage(c.Request().Context(), domain.Message{
		ID:         domain.MessageID(uuid.NewString()),
		SenderID:   domain.UserID(req.SenderID),
		ReceiverID: domain.UserID(req.ReceiverID),
		Content:    req.Content,
	})
	if err != nil {
		return storageErr(err, messageNotFound)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *handler) conversation(c echo.Context) error {
	other := c.QueryParam("other_user_id")
	if other == "" {
		return badRequest("Parámetro other_user_id es requerido")
	}
	msgs, err := h.store.Conversation(c.Request().Context(), domain.UserID(c.Param("user_id")), domain.UserID(other))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *handler) markRead(c echo.Context) error {
	m, err := h.store.MarkMessageRead(c.Request().Context(), domain.MessageID(c.Param("id")))
	if err != nil {
		return storageErr(err, messageNotFound)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *handler) deleteMessage(c echo.Context) error {
	if err := h.store.DeleteMessage(c.Request().Context(), domain.MessageID(c.Param("id"))); err != nil {
		return storageErr(err, messageNotFound)
	}
	return message(c, http.StatusOK, "Mensaje eliminado")
}
