package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	CreateBatch(ctx context.Context, items []*model.Item) (int, error)
	List(ctx context.Context) ([]*model.Item, error)
	FindByID(ctx context.Context, id int) (*model.Item, error)
	Update(ctx context.Context, id int, params model.UpdateItemParams) (*model.Item, error)
	Delete(ctx context.Context, id int) error

	// Stock
	DecrementStockIfAvailable(ctx context.Context, id int, expectedMinimum int) (*model.Item, error)
	IncrementStock(ctx context.Context, id int, amount int) (*model.Item, error)
}

type ItemRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &ItemRepositoryImpl{
		pool: pool,
	}
}

const itemColumns = `id, name, cost, quantity, link, image_url, created_at, updated_at`

func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Cost,
		&item.Quantity,
		&item.Link,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, translatePgError(err)
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `
		INSERT INTO items (name, cost, quantity, link, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	return scanItem(r.pool.QueryRow(ctx, query,
		item.Name, item.Cost, item.Quantity, item.Link, item.ImageURL,
	))
}

// CreateBatch inserts all items in one transaction; either every row is
// stored or none is.
func (r *ItemRepositoryImpl) CreateBatch(ctx context.Context, items []*model.Item) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
			INSERT INTO items (name, cost, quantity, link, image_url)
			VALUES ($1, $2, $3, $4, $5)
		`, item.Name, item.Cost, item.Quantity, item.Link, item.ImageURL)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, translatePgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *ItemRepositoryImpl) List(ctx context.Context) ([]*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *ItemRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateItemParams) (*model.Item, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Cost != nil {
		add("cost", *params.Cost)
	}
	if params.Quantity != nil {
		add("quantity", *params.Quantity)
	}
	if params.Link != nil {
		add("link", nullIfEmpty(*params.Link))
	}
	if params.ImageURL != nil {
		add("image_url", nullIfEmpty(*params.ImageURL))
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	add("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, itemColumns)

	return scanItem(r.pool.QueryRow(ctx, query, args...))
}

func (r *ItemRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}

	return nil
}

// DecrementStockIfAvailable takes one unit only while quantity >= expectedMinimum.
func (r *ItemRepositoryImpl) DecrementStockIfAvailable(ctx context.Context, id int, expectedMinimum int) (*model.Item, error) {
	query := `
		UPDATE items
		SET quantity = quantity - 1, updated_at = $1
		WHERE id = $2 AND quantity >= $3
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, time.Now().UTC(), id, expectedMinimum))
	if errors.Is(err, apperrors.ErrItemNotFound) {
		return nil, apperrors.ErrConditionNotMet
	}
	return item, err
}

func (r *ItemRepositoryImpl) IncrementStock(ctx context.Context, id int, amount int) (*model.Item, error) {
	query := `
		UPDATE items
		SET quantity = quantity + $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + itemColumns

	return scanItem(r.pool.QueryRow(ctx, query, amount, time.Now().UTC(), id))
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
