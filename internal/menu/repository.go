package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"pizza-store/internal/database"
	"pizza-store/internal/domain"
)

type Repository interface {
	List(ctx context.Context, l Listing) ([]domain.Item, error)
	GetByName(ctx context.Context, name string) (domain.Item, error)
	ItemExists(ctx context.Context, name string) (bool, error)
	PriceOf(ctx context.Context, name string) (decimal.Decimal, error)
	Insert(ctx context.Context, it domain.Item) error
	Update(ctx context.Context, it domain.Item) error
	Rename(ctx context.Context, oldName, newName string) error
}

type repo struct {
	db *database.Conn
}

func NewRepository(db *database.Conn) Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, l Listing) ([]domain.Item, error) {
	sql, args := l.BuildSQL()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var cat string
		if err := rows.Scan(&it.Name, &it.Ingredients, &cat, &it.Price, &it.Description); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		it.Category = domain.Category(cat)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repo) GetByName(ctx context.Context, name string) (domain.Item, error) {
	var it domain.Item
	var cat string
	err := r.db.QueryRow(ctx, `
		SELECT item_name, ingredients, category, price, description
		FROM items WHERE item_name = $1
	`, name).Scan(&it.Name, &it.Ingredients, &cat, &it.Price, &it.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("item %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	it.Category = domain.Category(cat)
	return it, nil
}

func (r *repo) ItemExists(ctx context.Context, name string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM items WHERE item_name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return n > 0, nil
}

func (r *repo) PriceOf(ctx context.Context, name string) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT price FROM items WHERE item_name = $1`, name).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("item %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get item price: %w", err)
	}
	return price, nil
}

func (r *repo) Insert(ctx context.Context, it domain.Item) error {
	_, err := r.db.ExecRows(ctx, `
		INSERT INTO items (item_name, ingredients, category, price, description)
		VALUES ($1, $2, $3, $4, $5)
	`, it.Name, it.Ingredients, string(it.Category), it.Price, it.Description)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", database.MapConstraint(err))
	}
	return nil
}

func (r *repo) Update(ctx context.Context, it domain.Item) error {
	n, err := r.db.ExecRows(ctx, `
		UPDATE items SET ingredients = $2, category = $3, price = $4, description = $5
		WHERE item_name = $1
	`, it.Name, it.Ingredients, string(it.Category), it.Price, it.Description)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", database.MapConstraint(err))
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", it.Name, domain.ErrNotFound)
	}
	return nil
}

func (r *repo) Rename(ctx context.Context, oldName, newName string) error {
	n, err := r.db.ExecRows(ctx, `UPDATE items SET item_name = $2 WHERE item_name = $1`, oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename item: %w", database.MapConstraint(err))
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", oldName, domain.ErrNotFound)
	}
	return nil
}
