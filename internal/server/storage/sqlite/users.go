package sqlite

import (
	"context"
	"strings"

	"dante/internal/domain"
)

const userColumns = `id, company_id, name, email, phone, job_title, gender, birth_date, role,
    avatar_url, is_active, is_verified, created_at, updated_at`

func scanUser(row scanner, extra ...any) (domain.User, error) {
	var (
		u                domain.User
		active, verified int
		created, updated int64
	)
	dest := []any{&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.Phone, &u.JobTitle, &u.Gender, &u.BirthDate, &u.Role,
		&u.AvatarURL, &active, &verified, &created, &updated}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.User{}, mapErr(err)
	}
	u.IsActive = active != 0
	u.IsVerified = verified != 0
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u domain.User, passwordHash string) (domain.User, error) {
	now := s.now()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.CreatedAt = fromMillis(toMillis(now))
	u.UpdatedAt = u.CreatedAt
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, company_id, name, email, password_hash, phone, job_title, gender, birth_date, role,
    avatar_url, is_active, is_verified, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.CompanyID, u.Name, u.Email, passwordHash, u.Phone, u.JobTitle, u.Gender, u.BirthDate, u.Role,
		u.AvatarURL, boolInt(u.IsActive), boolInt(u.IsVerified), toMillis(now), toMillis(now))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (s *Store) UserByEmail(ctx context.Context, email string) (domain.User, string, error) {
	var hash string
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = ?`, strings.TrimSpace(email)), &hash)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, hash, nil
}

func (s *Store) UserPasswordHash(ctx context.Context, id domain.UserID) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE id = ?`, id).Scan(&hash)
	return hash, mapErr(err)
}

func (s *Store) ListUsers(ctx context.Context, company domain.CompanyID) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users WHERE company_id = ? ORDER BY created_at`, company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := s.now()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	err := affected(s.db.ExecContext(ctx, `
UPDATE users SET name = ?, email = ?, phone = ?, job_title = ?, gender = ?, birth_date = ?, role = ?,
    avatar_url = ?, is_active = ?, is_verified = ?, updated_at = ?
WHERE id = ?`,
		u.Name, u.Email, u.Phone, u.JobTitle, u.Gender, u.BirthDate, u.Role,
		u.AvatarURL, boolInt(u.IsActive), boolInt(u.IsVerified), toMillis(now), u.ID))
	if err != nil {
		return domain.User{}, err
	}
	return s.GetUser(ctx, u.ID)
}

func (s *Store) SetUserPassword(ctx context.Context, id domain.UserID, passwordHash string) error {
	return affected(s.db.ExecContext(ctx, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, toMillis(s.now()), id))
}

func (s *Store) DeleteUser(ctx context.Context, id domain.UserID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE sender_id = ?1 OR receiver_id = ?1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM support_tickets WHERE user_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM chat_exchanges WHERE user_id = ?`, id); err != nil {
		return err
	}
	if err := affected(tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)); err != nil {
		return err
	}
	return tx.Commit()
}
