package sqlite

import (
	"context"
	"strings"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

const productColumns = `id, company_id, category_id, name, description, price, stock, image, is_active,
    created_at, updated_at`

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p                domain.Product
		active           int
		created, updated int64
	)
	if err := row.Scan(&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Image, &active, &created, &updated); err != nil {
		return domain.Product{}, mapErr(err)
	}
	p.IsActive = active != 0
	p.CreatedAt = fromMillis(created)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	now := toMillis(s.now())
	_, err := s.db.ExecContext(ctx, `
INSERT INTO products (id, company_id, category_id, name, description, price, stock, image, is_active,
    created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CompanyID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.Image, boolInt(p.IsActive),
		now, now)
	if err != nil {
		return domain.Product{}, mapErr(err)
	}
	p.CreatedAt = fromMillis(now)
	p.UpdatedAt = p.CreatedAt
	return p, nil
}

func (s *Store) GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	return scanProduct(s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
}

func (s *Store) ListProducts(ctx context.Context, f storage.ProductFilter) ([]domain.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.CompanyID != "" {
		where = append(where, "company_id = ?")
		args = append(args, f.CompanyID)
	}
	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	q := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, rowid DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	err := affected(s.db.ExecContext(ctx, `
UPDATE products SET category_id = ?, name = ?, description = ?, price = ?, stock = ?, image = ?,
    is_active = ?, updated_at = ?
WHERE id = ?`,
		p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.Image, boolInt(p.IsActive), toMillis(s.now()), p.ID))
	if err != nil {
		return domain.Product{}, err
	}
	return s.GetProduct(ctx, p.ID)
}

func (s *Store) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	return affected(s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id))
}
