package sqlite

import (
	"context"

	"dante/internal/domain"
)

const messageColumns = `id, sender_id, receiver_id, content, is_read, created_at`

func scanMessage(row scanner) (domain.Message, error) {
	var (
		m       domain.Message
		read    int
		created int64
	)
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &read, &created); err != nil {
		return domain.Message{}, mapErr(err)
	}
	m.IsRead = read != 0
	m.CreatedAt = fromMillis(created)
	return m, nil
}

func (s *Store) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	now := toMillis(s.now())
	_, err := s.db.ExecContext(ctx, `
INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.SenderID, m.ReceiverID, m.Content, boolInt(m.IsRead), now)
	if err != nil {
		return domain.Message{}, mapErr(err)
	}
	m.CreatedAt = fromMillis(now)
	return m, nil
}

func (s *Store) GetMessage(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	return scanMessage(s.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id))
}

func (s *Store) Conversation(ctx context.Context, a, b domain.UserID) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+messageColumns+` FROM messages
WHERE (sender_id = ?1 AND receiver_id = ?2) OR (sender_id = ?2 AND receiver_id = ?1)
ORDER BY created_at, rowid`, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) MarkMessageRead(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	if err := affected(s.db.ExecContext(ctx, `UPDATE messages SET is_read = 1 WHERE id = ?`, id)); err != nil {
		return domain.Message{}, err
	}
	return s.GetMessage(ctx, id)
}

func (s *Store) DeleteMessage(ctx context.Context, id domain.MessageID) error {
	return affected(s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id))
}
