package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
)

type ticketCreate struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
}

const ticketNotFound = "Ticket no encontrado"

func validStatus(s domain.TicketStatus) bool {
	switch s {
	case domain.TicketOpen, domain.TicketInProgress, domain.TicketClosed:
		return true
	}
	return false
}

func (h *handler) createTicket(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := ticketCreate{
		Subject:     in.text("subject"),
		Description: in.text("description"),
		UserID:      in.text("user_id"),
	}
	if err := in.Err(); err != nil {
		return err
	}
	if err := check(req); err != nil {
		return err
	}
	t, err := h.store.CreateTicket(c.Request().Context(), domain.SupportTicket{
		ID:          domain.TicketID(uuid.NewString()),
		UserID:      domain.UserID(req.UserID),
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.TicketOpen,
	})
	if err != nil {
		return storageErr(err, ticketNotFound)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *handler) listTickets(c echo.Context) error {
	tickets, err := h.store.ListTickets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *handler) getTicket(c echo.Context) error {
	t, err := h.store.GetTicket(c.Request().Context(), domain.TicketID(c.Param("id")))
	if err != nil {
		return storageErr(err, ticketNotFound)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *handler) updateTicket(c echo.Context) error {
	ctx := c.Request().Context()
	t, err := h.store.GetTicket(ctx, domain.TicketID(c.Param("id")))
	if err != nil {
		return storageErr(err, ticketNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}
	if in.has("subject") {
		t.Subject = in.text("subject")
	}
	if in.has("description") {
		t.Description = in.text("description")
	}
	if in.has("status") {
		s := domain.TicketStatus(in.text("status"))
		if !validStatus(s) {
			return badRequest("Estado inválido")
		}
		t.Status = s
	}
	if err := in.Err(); err != nil {
		return err
	}
	updated, err := h.store.UpdateTicket(ctx, t)
	if err != nil {
		return storageErr(err, ticketNotFound)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteTicket(c echo.Context) error {
	if err := h.store.DeleteTicket(c.Request().Context(), domain.TicketID(c.Param("id"))); err != nil {
		return storageErr(err, ticketNotFound)
	}
	return message(c, http.StatusOK, "Ticket eliminado")
}
