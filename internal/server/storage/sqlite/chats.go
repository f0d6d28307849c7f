package sqlite

import (
	"context"

	"dante/internal/domain"
)

func (s *Store) SaveExchange(ctx context.Context, x domain.ChatExchange) error {
	if x.CreatedAt.IsZero() {
		x.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO chat_exchanges (user_id, company_id, message, reply, created_at) VALUES (?, ?, ?, ?, ?)`,
		x.UserID, x.CompanyID, x.Message, x.Reply, toMillis(x.CreatedAt))
	return mapErr(err)
}

// ListExchanges returns the user's latest exchanges, oldest first.
func (s *Store) ListExchanges(ctx context.Context, user domain.UserID, limit int) ([]domain.ChatExchange, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT user_id, company_id, message, reply, created_at FROM (
    SELECT user_id, company_id, message, reply, created_at, id FROM chat_exchanges
    WHERE user_id = ? ORDER BY id DESC LIMIT ?
) ORDER BY id`, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.ChatExchange{}
	for rows.Next() {
		var (
			x       domain.ChatExchange
			created int64
		)
		if err := rows.Scan(&x.UserID, &x.CompanyID, &x.Message, &x.Reply, &created); err != nil {
			return nil, err
		}
		x.CreatedAt = fromMillis(created)
		out = append(out, x)
	}
	return out, rows.Err()
}
