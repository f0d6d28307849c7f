package sqlite

import (
	"context"
	"strings"

	"dante/internal/domain"
)

const companyColumns = `id, name, email, phone, company_name, rif, address`

func scanCompany(row scanner) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyName, &c.RIF, &c.Address)
	return c, mapErr(err)
}

func (s *Store) CreateCompany(ctx context.Context, c domain.Company, passwordHash string) (domain.Company, error) {
	c.Email = strings.TrimSpace(c.Email)
	_, err := s.db.ExecContext(ctx, `
INSERT INTO companies (id, name, email, password_hash, phone, company_name, rif, address, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, passwordHash, c.Phone, c.CompanyName, c.RIF, c.Address, toMillis(s.now()))
	if err != nil {
		return domain.Company{}, mapErr(err)
	}
	return c, nil
}

func (s *Store) GetCompany(ctx context.Context, id domain.CompanyID) (domain.Company, error) {
	return scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
}

func (s *Store) CompanyByEmail(ctx context.Context, email string) (domain.Company, string, error) {
	var (
		c    domain.Company
		hash string
	)
	err := s.db.QueryRowContext(ctx, `SELECT `+companyColumns+`, password_hash FROM companies WHERE email = ?`,
		strings.TrimSpace(email)).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyName, &c.RIF, &c.Address, &hash)
	if err != nil {
		return domain.Company{}, "", mapErr(err)
	}
	return c, hash, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
