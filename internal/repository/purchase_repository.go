package repository

import (
	"context"
	"errors"
	"time"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository interface {
	Create(ctx context.Context, studentID, itemID, cost int, timestamp time.Time) (*model.Purchase, error)
	FindByID(ctx context.Context, id int) (*model.Purchase, error)
	List(ctx context.Context, filter model.DeliveryFilter) ([]*model.PurchaseDetail, error)
	ListByStudentID(ctx context.Context, studentID int) ([]*model.PurchaseDetail, error)
	SetDelivered(ctx context.Context, id int, delivered bool) (*model.Purchase, error)
	Delete(ctx context.Context, id int) error
	CancelUndelivered(ctx context.Context, id int) (*model.Purchase, error)

	// Stats
	Count(ctx context.Context, filter model.DeliveryFilter) (int, error)
	PopularItems(ctx context.Context, grade *model.Grade, limit int) ([]model.PopularItem, error)
}

type PurchaseRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) PurchaseRepository {
	return &PurchaseRepositoryImpl{
		pool: pool,
	}
}

const purchaseColumns = `id, student_id, item_id, cost, timestamp, is_delivered`

const purchaseDetailQuery = `
	SELECT p.id, p.student_id, p.item_id, p.cost, p.timestamp, p.is_delivered,
	       s.name, s.grade, i.name, i.cost
	FROM purchases p
	JOIN students s ON s.id = p.student_id
	JOIN items i ON i.id = p.item_id
`

func scanPurchase(row pgx.Row) (*model.Purchase, error) {
	var purchase model.Purchase
	err := row.Scan(
		&purchase.ID,
		&purchase.StudentID,
		&purchase.ItemID,
		&purchase.Cost,
		&purchase.Timestamp,
		&purchase.IsDelivered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPurchaseNotFound
		}
		return nil, translatePgError(err)
	}
	return &purchase, nil
}

func collectPurchaseDetails(rows pgx.Rows) ([]*model.PurchaseDetail, error) {
	defer rows.Close()

	details := make([]*model.PurchaseDetail, 0)
	for rows.Next() {
		var d model.PurchaseDetail
		err := rows.Scan(
			&d.ID,
			&d.StudentID,
			&d.ItemID,
			&d.Cost,
			&d.Timestamp,
			&d.IsDelivered,
			&d.StudentName,
			&d.StudentGrade,
			&d.ItemName,
			&d.ItemCost,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, studentID, itemID, cost int, timestamp time.Time) (*model.Purchase, error) {
	query := `
		INSERT INTO purchases (student_id, item_id, cost, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + purchaseColumns

	return scanPurchase(r.pool.QueryRow(ctx, query, studentID, itemID, cost, timestamp.UTC()))
}

func (r *PurchaseRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	return scanPurchase(r.pool.QueryRow(ctx, query, id))
}

func (r *PurchaseRepositoryImpl) List(ctx context.Context, filter model.DeliveryFilter) ([]*model.PurchaseDetail, error) {
	query := purchaseDetailQuery
	args := []interface{}{}
	if filter != model.DeliveryFilterAll && filter != "" {
		query += ` WHERE p.is_delivered = $1`
		args = append(args, filter == model.DeliveryFilterDelivered)
	}
	query += ` ORDER BY p.timestamp DESC, p.id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectPurchaseDetails(rows)
}

func (r *PurchaseRepositoryImpl) ListByStudentID(ctx context.Context, studentID int) ([]*model.PurchaseDetail, error) {
	query := purchaseDetailQuery + ` WHERE p.student_id = $1 ORDER BY p.timestamp DESC, p.id DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return collectPurchaseDetails(rows)
}

func (r *PurchaseRepositoryImpl) SetDelivered(ctx context.Context, id int, delivered bool) (*model.Purchase, error) {
	query := `
		UPDATE purchases
		SET is_delivered = $1
		WHERE id = $2
		RETURNING ` + purchaseColumns

	return scanPurchase(r.pool.QueryRow(ctx, query, delivered, id))
}

func (r *PurchaseRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPurchaseNotFound
	}

	return nil
}

// CancelUndelivered refunds the buyer, returns the unit to stock and deletes
// the purchase in one transaction. The purchase row is locked first, so a
// concurrent cancel or delivery update waits and then sees the outcome.
func (r *PurchaseRepositoryImpl) CancelUndelivered(ctx context.Context, id int) (*model.Purchase, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	purchase, err := scanPurchase(tx.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if purchase.IsDelivered {
		return nil, apperrors.ErrAlreadyDelivered
	}

	now := time.Now().UTC()
	result, err := tx.Exec(ctx, `
		UPDATE students
		SET ticket_count = ticket_count + $1, updated_at = $2
		WHERE id = $3`, purchase.Cost, now, purchase.StudentID)
	if err != nil {
		return nil, translatePgError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	result, err = tx.Exec(ctx, `
		UPDATE items
		SET quantity = quantity + 1, updated_at = $1
		WHERE id = $2`, now, purchase.ItemID)
	if err != nil {
		return nil, translatePgError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrItemNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *PurchaseRepositoryImpl) Count(ctx context.Context, filter model.DeliveryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM purchases`
	args := []interface{}{}
	if filter != model.DeliveryFilterAll && filter != "" {
		query += ` WHERE is_delivered = $1`
		args = append(args, filter == model.DeliveryFilterDelivered)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PurchaseRepositoryImpl) PopularItems(ctx context.Context, grade *model.Grade, limit int) ([]model.PopularItem, error) {
	query := `
		SELECT i.id, i.name, COUNT(*) AS purchase_count
		FROM purchases p
		JOIN items i ON i.id = p.item_id
		JOIN students s ON s.id = p.student_id
	`
	args := []interface{}{limit}
	if grade != nil {
		query += ` WHERE s.grade = $2`
		args = append(args, *grade)
	}
	query += ` GROUP BY i.id, i.name ORDER BY purchase_count DESC, i.name LIMIT $1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PopularItem, 0, limit)
	for rows.Next() {
		var p model.PopularItem
		if err := rows.Scan(&p.ItemID, &p.ItemName, &p.PurchaseCount); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
