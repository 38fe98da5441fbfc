package stores

import (
	"context"
	"fmt"

	"pizza-store/internal/database"
	"pizza-store/internal/domain"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Store, error)
	Exists(ctx context.Context, storeID int) (bool, error)
}

type repo struct {
	db *database.Conn
}

func NewRepository(db *database.Conn) Repository {
	return &repo{db: db}
}

func (r *repo) ListAll(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.db.Query(ctx, `
		SELECT store_id, address, city, state, is_open, review_score
		FROM stores ORDER BY store_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var out []domain.Store
	for rows.Next() {
		var st domain.Store
		if err := rows.Scan(&st.ID, &st.Address, &st.City, &st.State, &st.IsOpen, &st.ReviewScore); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *repo) Exists(ctx context.Context, storeID int) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM stores WHERE store_id = $1`, storeID)
	if err != nil {
		return false, fmt.Errorf("failed to check store: %w", err)
	}
	return n > 0, nil
}
