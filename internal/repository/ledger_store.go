package repository

import (
	"context"
	"time"

	"classroom-market/internal/model"
)

// LedgerStore is the storage contract the purchase engine runs on. The two
// Conditional* methods must evaluate their guard and apply their write as
// one indivisible operation and return apperrors.ErrConditionNotMet when the
// guard does not hold. Restore* are unconditional additive writes used only
// to compensate.
type LedgerStore interface {
	GetItem(ctx context.Context, itemID int) (*model.Item, error)
	GetStudent(ctx context.Context, studentID int) (*model.Student, error)
	GetPurchase(ctx context.Context, purchaseID int) (*model.Purchase, error)

	ConditionalDecrementStock(ctx context.Context, itemID int, expectedMinimum int) (*model.Item, error)
	ConditionalDeductTickets(ctx context.Context, studentID int, amount int) (*model.Student, error)

	RestoreStock(ctx context.Context, itemID int, amount int) error
	RestoreTickets(ctx context.Context, studentID int, amount int) error

	RecordPurchase(ctx context.Context, studentID, itemID, cost int, timestamp time.Time) (*model.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID int) error
}

// PurchaseCanceller is implemented by stores that can refund and remove an
// undelivered purchase as one atomic operation. It returns the removed
// purchase, apperrors.ErrAlreadyDelivered or apperrors.ErrPurchaseNotFound.
type PurchaseCanceller interface {
	CancelUndelivered(ctx context.Context, purchaseID int) (*model.Purchase, error)
}

type PostgresLedgerStore struct {
	students  StudentRepository
	items     ItemRepository
	purchases PurchaseRepository
}

func NewPostgresLedgerStore(students StudentRepository, items ItemRepository, purchases PurchaseRepository) LedgerStore {
	return &PostgresLedgerStore{
		students:  students,
		items:     items,
		purchases: purchases,
	}
}

func (s *PostgresLedgerStore) GetItem(ctx context.Context, itemID int) (*model.Item, error) {
	return s.items.FindByID(ctx, itemID)
}

func (s *PostgresLedgerStore) GetStudent(ctx context.Context, studentID int) (*model.Student, error) {
	return s.students.FindByID(ctx, studentID)
}

func (s *PostgresLedgerStore) GetPurchase(ctx context.Context, purchaseID int) (*model.Purchase, error) {
	return s.purchases.FindByID(ctx, purchaseID)
}

func (s *PostgresLedgerStore) ConditionalDecrementStock(ctx context.Context, itemID int, expectedMinimum int) (*model.Item, error) {
	if expectedMinimum < 1 {
		expectedMinimum = 1
	}
	return s.items.DecrementStockIfAvailable(ctx, itemID, expectedMinimum)
}

func (s *PostgresLedgerStore) ConditionalDeductTickets(ctx context.Context, studentID int, amount int) (*model.Student, error) {
	return s.students.DeductTicketsIfAvailable(ctx, studentID, amount)
}

func (s *PostgresLedgerStore) RestoreStock(ctx context.Context, itemID int, amount int) error {
	_, err := s.items.IncrementStock(ctx, itemID, amount)
	return err
}

func (s *PostgresLedgerStore) RestoreTickets(ctx context.Context, studentID int, amount int) error {
	_, err := s.students.AddTickets(ctx, studentID, amount)
	return err
}

func (s *PostgresLedgerStore) RecordPurchase(ctx context.Context, studentID, itemID, cost int, timestamp time.Time) (*model.Purchase, error) {
	return s.purchases.Create(ctx, studentID, itemID, cost, timestamp)
}

func (s *PostgresLedgerStore) DeletePurchase(ctx context.Context, purchaseID int) error {
	return s.purchases.Delete(ctx, purchaseID)
}

func (s *PostgresLedgerStore) CancelUndelivered(ctx context.Context, purchaseID int) (*model.Purchase, error) {
	return s.purchases.CancelUndelivered(ctx, purchaseID)
}
