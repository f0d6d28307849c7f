package sqlite

import (
	"context"
	"strings"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

const categoryColumns = `id, company_id, typeon, name, description, image, created_at, updated_at`

func scanCategory(row scanner) (domain.Category, error) {
	var (
		c                domain.Category
		created, updated int64
	)
	if err := row.Scan(&c.ID, &c.CompanyID, &c.Kind, &c.Name, &c.Description, &c.Image, &created, &updated); err != nil {
		return domain.Category{}, mapErr(err)
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	now := toMillis(s.now())
	_, err := s.db.ExecContext(ctx, `
INSERT INTO categories (id, company_id, typeon, name, description, image, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CompanyID, c.Kind, c.Name, c.Description, c.Image, now, now)
	if err != nil {
		return domain.Category{}, mapErr(err)
	}
	c.CreatedAt = fromMillis(now)
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

func (s *Store) GetCategory(ctx context.Context, id domain.CategoryID) (domain.Category, error) {
	return scanCategory(s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id))
}

func (s *Store) ListCategories(ctx context.Context, f storage.CategoryFilter) ([]domain.Category, error) {
	var (
		where []string
		args  []any
	)
	if f.CompanyID != "" {
		where = append(where, "company_id = ?")
		args = append(args, f.CompanyID)
	}
	if f.Kind != domain.AnyCategoryKind {
		where = append(where, "typeon = ?")
		args = append(args, f.Kind)
	}
	q := `SELECT ` + categoryColumns + ` FROM categories`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, rowid DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	err := affected(s.db.ExecContext(ctx, `
UPDATE categories SET name = ?, description = ?, image = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Description, c.Image, toMillis(s.now()), c.ID))
	if err != nil {
		return domain.Category{}, err
	}
	return s.GetCategory(ctx, c.ID)
}

func (s *Store) DeleteCategory(ctx context.Context, id domain.CategoryID) error {
	return affected(s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id))
}
