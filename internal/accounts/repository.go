package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizza-store/internal/database"
	"pizza-store/internal/domain"
)

type Repository interface {
	GetByLogin(ctx context.Context, login string) (domain.Account, error)
	Exists(ctx context.Context, login string) (bool, error)
	Create(ctx context.Context, a domain.Account) error
	UpdatePassword(ctx context.Context, login, hash string) error
	UpdatePhone(ctx context.Context, login, phone string) error
	UpdateFavoriteItem(ctx context.Context, login, itemName string) error
	Rename(ctx context.Context, oldLogin, newLogin string) error
	UpdateRole(ctx context.Context, login string, role domain.Role) error
}

type repo struct {
	db *database.Conn
}

func NewRepository(db *database.Conn) Repository {
	return &repo{db: db}
}

func (r *repo) GetByLogin(ctx context.Context, login string) (domain.Account, error) {
	var a domain.Account
	var role string
	err := r.db.QueryRow(ctx, `
		SELECT login, password_hash, role, favorite_item, phone_num
		FROM users WHERE login = $1
	`, login).Scan(&a.Login, &a.PasswordHash, &role, &a.FavoriteItem, &a.PhoneNum)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Account{}, fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to get user: %w", err)
	}
	a.Role = domain.Role(role)
	return a, nil
}

func (r *repo) Exists(ctx context.Context, login string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM users WHERE login = $1`, login)
	if err != nil {
		return false, fmt.Errorf("failed to check login: %w", err)
	}
	return n > 0, nil
}

func (r *repo) Create(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecRows(ctx, `
		INSERT INTO users (login, password_hash, role, favorite_item, phone_num)
		VALUES ($1, $2, $3, $4, $5)
	`, a.Login, a.PasswordHash, string(a.Role), a.FavoriteItem, a.PhoneNum)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", database.MapConstraint(err))
	}
	return nil
}

func (r *repo) UpdatePassword(ctx context.Context, login, hash string) error {
	return r.updateField(ctx, `UPDATE users SET password_hash = $2 WHERE login = $1`, login, hash)
}

func (r *repo) UpdatePhone(ctx context.Context, login, phone string) error {
	return r.updateField(ctx, `UPDATE users SET phone_num = $2 WHERE login = $1`, login, phone)
}

func (r *repo) UpdateFavoriteItem(ctx context.Context, login, itemName string) error {
	return r.updateField(ctx, `UPDATE users SET favorite_item = $2 WHERE login = $1`, login, itemName)
}

func (r *repo) Rename(ctx context.Context, oldLogin, newLogin string) error {
	return r.updateField(ctx, `UPDATE users SET login = $2 WHERE login = $1`, oldLogin, newLogin)
}

func (r *repo) UpdateRole(ctx context.Context, login string, role domain.Role) error {
	return r.updateField(ctx, `UPDATE users SET role = $2 WHERE login = $1`, login, string(role))
}

func (r *repo) updateField(ctx context.Context, sql, login string, val any) error {
	n, err := r.db.ExecRows(ctx, sql, login, val)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", database.MapConstraint(err))
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
	}
	return nil
}
