package sqlite

import (
	"context"
	"strings"

	"dante/internal/domain"
)

const clientColumns = `id, company_id, category_id, name, email, phone, address, document_type, document_number,
    avatar, is_active, created_at, updated_at`

func scanClient(row scanner) (domain.Client, error) {
	var (
		c                domain.Client
		active           int
		created, updated int64
	)
	if err := row.Scan(&c.ID, &c.CompanyID, &c.CategoryID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.DocumentType, &c.DocumentNumber, &c.Avatar, &active, &created, &updated); err != nil {
		return domain.Client{}, mapErr(err)
	}
	c.IsActive = active != 0
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return c, nil
}

func (s *Store) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	now := toMillis(s.now())
	c.Email = strings.TrimSpace(c.Email)
	_, err := s.db.ExecContext(ctx, `
INSERT INTO clients (id, company_id, category_id, name, email, phone, address, document_type, document_number,
    avatar, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CompanyID, c.CategoryID, c.Name, c.Email, c.Phone, c.Address, c.DocumentType, c.DocumentNumber,
		c.Avatar, boolInt(c.IsActive), now, now)
	if err != nil {
		return domain.Client{}, mapErr(err)
	}
	c.CreatedAt = fromMillis(now)
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

func (s *Store) GetClient(ctx context.Context, id domain.ClientID) (domain.Client, error) {
	return scanClient(s.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
}

func (s *Store) ListClients(ctx context.Context, company domain.CompanyID) ([]domain.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE company_id = ? ORDER BY created_at DESC, rowid DESC`, company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	err := affected(s.db.ExecContext(ctx, `
UPDATE clients SET category_id = ?, name = ?, email = ?, phone = ?, address = ?, document_type = ?,
    document_number = ?, avatar = ?, is_active = ?, updated_at = ?
WHERE id = ?`,
		c.CategoryID, c.Name, strings.TrimSpace(c.Email), c.Phone, c.Address, c.DocumentType,
		c.DocumentNumber, c.Avatar, boolInt(c.IsActive), toMillis(s.now()), c.ID))
	if err != nil {
		return domain.Client{}, err
	}
	return s.GetClient(ctx, c.ID)
}

func (s *Store) DeleteClient(ctx context.Context, id domain.ClientID) error {
	return affected(s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id))
}
