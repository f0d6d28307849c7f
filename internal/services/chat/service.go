package chat

import (
	"context"
	"fmt"
	"strings"

	"dante/internal/domain"
	"dante/internal/services/scope"
)

type Service struct {
	api   domain.ChatAPI
	scope *scope.Scope
}

func New(api domain.ChatAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc}
}

// Ask sends message for the current company. The user id is attached when a user is logged in.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"message": "message is required"}}
	}
	company, err := s.scope.CompanyID()
	if err != nil {
		return "", err
	}
	me, _ := s.scope.UserID()

	out, err := s.api.Chat(ctx, domain.ChatRequest{UserID: me, CompanyID: company, Message: message})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return out.Reply, nil
}
