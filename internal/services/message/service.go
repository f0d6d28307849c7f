package message

import (
	"context"
	"fmt"
	"strings"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

// Service sends, reads and deletes messages for the logged-in user.
type Service struct {
	api   domain.MessageAPI
	scope *scope.Scope
	list  *cache.List[domain.Message]
}

func New(api domain.MessageAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc, list: cache.New[domain.Message]()}
}

// Conversation replaces the mirror with the messages exchanged with other, oldest first.
func (s *Service) Conversation(ctx context.Context, other domain.UserID) ([]domain.Message, error) {
	me, err := s.scope.UserID()
	if err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.Conversation(ctx, me, other)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation with %s: %w", other, err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

// Send posts a message to another user and appends it.
func (s *Service) Send(ctx context.Context, to domain.UserID, content string) (domain.Message, error) {
	me, err := s.scope.UserID()
	if err != nil {
		return domain.Message{}, err
	}
	verr := &domain.ValidationError{}
	if to == "" {
		verr.Add("receiver_id", "receiver is required")
	}
	if strings.TrimSpace(content) == "" {
		verr.Add("content", "content is required")
	}
	if err := verr.OrNil(); err != nil {
		return domain.Message{}, err
	}

	gen := s.list.Generation()
	m, err := s.api.SendMessage(ctx, domain.NewMessage{SenderID: me, ReceiverID: to, Content: content})
	if err != nil {
		return domain.Message{}, fmt.Errorf("send message: %w", err)
	}
	s.list.Append(gen, m)
	return m, nil
}

// MarkRead flags a message as read and replaces the matching entry.
func (s *Service) MarkRead(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	gen := s.list.Generation()
	m, err := s.api.MarkMessageRead(ctx, id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("mark message %s read: %w", id, err)
	}
	s.list.ReplaceByKey(gen, m)
	return m, nil
}

func (s *Service) Remove(ctx context.Context, id domain.MessageID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

func (s *Service) Logout() { s.list.Reset() }

func (s *Service) Messages() []domain.Message { return s.list.Items() }

var _ domain.MessageService = (*Service)(nil)
