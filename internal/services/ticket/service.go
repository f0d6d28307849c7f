package ticket

import (
	"context"
	"fmt"
	"strings"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

type Service struct {
	api   domain.TicketAPI
	scope *scope.Scope
	list  *cache.List[domain.SupportTicket]
}

func New(api domain.TicketAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc, list: cache.New[domain.SupportTicket]()}
}

// FetchAll replaces the local list with every ticket, newest first.
func (s *Service) FetchAll(ctx context.Context) ([]domain.SupportTicket, error) {
	if _, err := s.scope.CompanyID(); err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tickets: %w", err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

// Add opens a ticket on behalf of the logged-in user.
func (s *Service) Add(ctx context.Context, subject, description string) (domain.SupportTicket, error) {
	me, err := s.scope.UserID()
	if err != nil {
		return domain.SupportTicket{}, err
	}
	verr := &domain.ValidationError{}
	if strings.TrimSpace(subject) == "" {
		verr.Add("subject", "subject is required")
	}
	if strings.TrimSpace(description) == "" {
		verr.Add("description", "description is required")
	}
	if err := verr.OrNil(); err != nil {
		return domain.SupportTicket{}, err
	}

	gen := s.list.Generation()
	t, err := s.api.CreateTicket(ctx, domain.NewTicket{Subject: subject, Description: description, UserID: me})
	if err != nil {
		return domain.SupportTicket{}, fmt.Errorf("open ticket: %w", err)
	}
	s.list.Prepend(gen, t)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.SupportTicket, error) {
	gen := s.list.Generation()
	t, err := s.api.UpdateTicket(ctx, id, patch)
	if err != nil {
		return domain.SupportTicket{}, fmt.Errorf("update ticket %s: %w", id, err)
	}
	s.list.ReplaceByKey(gen, t)
	return t, nil
}

// Close marks a ticket as Cerrado.
func (s *Service) Close(ctx context.Context, id domain.TicketID) (domain.SupportTicket, error) {
	st := domain.TicketClosed
	return s.Update(ctx, id, domain.TicketPatch{Status: &st})
}

func (s *Service) Remove(ctx context.Context, id domain.TicketID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

func (s *Service) Logout() { s.list.Reset() }

func (s *Service) Tickets() []domain.SupportTicket { return s.list.Items() }

var _ domain.TicketService = (*Service)(nil)
