package sqlite

import (
	"context"
	"database/sql"

	"dante/internal/domain"
)

// Tickets embed a summary of their author.
const ticketSelect = `
SELECT t.id, t.user_id, t.subject, t.description, t.status, t.created_at, t.updated_at,
    u.name, u.email, u.phone, u.avatar_url
FROM support_tickets t LEFT JOIN users u ON u.id = t.user_id`

func scanTicket(row scanner) (domain.SupportTicket, error) {
	var (
		t                       domain.SupportTicket
		created, updated        int64
		name, email, phone, url sql.NullString
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Description, &t.Status, &created, &updated,
		&name, &email, &phone, &url); err != nil {
		return domain.SupportTicket{}, mapErr(err)
	}
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updated)
	if name.Valid {
		t.User = &domain.UserSummary{
			ID:        t.UserID,
			Name:      name.String,
			Email:     email.String,
			Phone:     phone.String,
			AvatarURL: url.String,
		}
	}
	return t, nil
}

func (s *Store) CreateTicket(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error) {
	now := toMillis(s.now())
	if t.Status == "" {
		t.Status = domain.TicketOpen
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO support_tickets (id, user_id, subject, description, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Subject, t.Description, t.Status, now, now)
	if err != nil {
		return domain.SupportTicket{}, mapErr(err)
	}
	return s.GetTicket(ctx, t.ID)
}

func (s *Store) GetTicket(ctx context.Context, id domain.TicketID) (domain.SupportTicket, error) {
	return scanTicket(s.db.QueryRowContext(ctx, ticketSelect+` WHERE t.id = ?`, id))
}

func (s *Store) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	rows, err := s.db.QueryContext(ctx, ticketSelect+` ORDER BY t.created_at DESC, t.rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.SupportTicket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) UpdateTicket(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error) {
	err := affected(s.db.ExecContext(ctx, `
UPDATE support_tickets SET subject = ?, description = ?, status = ?, updated_at = ? WHERE id = ?`,
		t.Subject, t.Description, t.Status, toMillis(s.now()), t.ID))
	if err != nil {
		return domain.SupportTicket{}, err
	}
	return s.GetTicket(ctx, t.ID)
}

func (s *Store) DeleteTicket(ctx context.Context, id domain.TicketID) error {
	return affected(s.db.ExecContext(ctx, `DELETE FROM support_tickets WHERE id = ?`, id))
}
