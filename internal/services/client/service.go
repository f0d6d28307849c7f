package client

import (
	"context"
	"fmt"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

// Service fetches and mutates clients on the server and mirrors the results.
type Service struct {
	api   domain.ClientAPI
	scope *scope.Scope
	list  *cache.List[domain.Client]
}

func New(api domain.ClientAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc, list: cache.New[domain.Client]()}
}

// FetchAll replaces the local list with the company's clients.
func (s *Service) FetchAll(ctx context.Context) ([]domain.Client, error) {
	company, err := s.scope.CompanyID()
	if err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.ListClients(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

// Add creates a client for the current company and prepends it.
func (s *Service) Add(ctx context.Context, in domain.NewClient, avatar *domain.Attachment) (domain.Client, error) {
	if in.CompanyID == "" {
		company, err := s.scope.CompanyID()
		if err != nil {
			return domain.Client{}, err
		}
		in.CompanyID = company
	}
	gen := s.list.Generation()
	c, err := s.api.CreateClient(ctx, in, avatar)
	if err != nil {
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}
	s.list.Prepend(gen, c)
	return c, nil
}

// Update patches a client and replaces the matching entry.
func (s *Service) Update(ctx context.Context, id domain.ClientID, patch domain.ClientPatch) (domain.Client, error) {
	gen := s.list.Generation()
	c, err := s.api.UpdateClient(ctx, id, patch)
	if err != nil {
		return domain.Client{}, fmt.Errorf("update client %s: %w", id, err)
	}
	s.list.ReplaceByKey(gen, c)
	return c, nil
}

// Remove deletes a client and filters it out.
func (s *Service) Remove(ctx context.Context, id domain.ClientID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

// Logout empties the mirror.
func (s *Service) Logout() { s.list.Reset() }

// Clients returns the mirrored list.
func (s *Service) Clients() []domain.Client { return s.list.Items() }

var _ domain.ClientService = (*Service)(nil)
