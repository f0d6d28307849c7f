package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

// historyTurns is how many past exchanges are replayed to the model.
const historyTurns = 10

// Service grounds an Assistant in company data and records every exchange.
type Service struct {
	store     storage.Store
	assistant Assistant
	log       *zap.Logger
}

func New(store storage.Store, a Assistant, log *zap.Logger) *Service {
	if a == nil {
		a = Placeholder{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, assistant: a, log: log}
}

// Chat answers req.Message for req.UserID within req.CompanyID.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (string, error) {
	facts, err := s.facts(ctx, req)
	if err != nil {
		return "", err
	}
	reply, err := s.assistant.Reply(ctx, facts, req.Message)
	if err != nil {
		return "", err
	}
	if err := s.store.SaveExchange(ctx, domain.ChatExchange{
		UserID:    req.UserID,
		CompanyID: req.CompanyID,
		Message:   req.Message,
		Reply:     reply,
	}); err != nil {
		// History is best effort.
		s.log.Error("save chat exchange", zap.String("user_id", req.UserID.String()), zap.Error(err))
	}
	return reply, nil
}

func (s *Service) facts(ctx context.Context, req domain.ChatRequest) (Facts, error) {
	company, err := s.store.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return Facts{}, fmt.Errorf("load company: %w", err)
	}
	products, err := s.store.ListProducts(ctx, storage.ProductFilter{CompanyID: req.CompanyID})
	if err != nil {
		return Facts{}, fmt.Errorf("load products: %w", err)
	}
	clients, err := s.store.ListClients(ctx, req.CompanyID)
	if err != nil {
		return Facts{}, fmt.Errorf("load clients: %w", err)
	}
	history, err := s.store.ListExchanges(ctx, req.UserID, historyTurns)
	if err != nil {
		return Facts{}, fmt.Errorf("load chat history: %w", err)
	}
	return Facts{Company: company, Products: products, Clients: clients, History: history}, nil
}
