package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPostgresLedgerStore seeds one student with 10 tickets and one item
// costing 3 with 2 units in stock.
func newPostgresLedgerStore(t *testing.T) (store repository.LedgerStore, studentID, itemID int) {
	t.Helper()
	pool := setupTestWithTruncate(t)
	store = repository.NewPostgresLedgerStore(
		repository.NewStudentRepository(pool),
		repository.NewItemRepository(pool),
		repository.NewPurchaseRepository(pool),
	)
	studentID = createTestStudent(t, pool, "Jun", 4, 10)
	itemID = createTestItem(t, pool, "Pencil", 3, 2)
	return store, studentID, itemID
}

func TestPostgresLedgerStore_Guards(t *testing.T) {
	ctx := context.Background()
	store, studentID, itemID := newPostgresLedgerStore(t)

	item, err := store.ConditionalDecrementStock(ctx, itemID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	_, err = store.ConditionalDecrementStock(ctx, itemID, 2)
	assert.ErrorIs(t, err, apperrors.ErrConditionNotMet)

	student, err := store.ConditionalDeductTickets(ctx, studentID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, student.TicketCount)

	_, err = store.ConditionalDeductTickets(ctx, studentID, 1)
	assert.ErrorIs(t, err, apperrors.ErrConditionNotMet)

	_, err = store.ConditionalDeductTickets(ctx, 9999, 1)
	assert.ErrorIs(t, err, apperrors.ErrConditionNotMet)

	require.NoError(t, store.RestoreTickets(ctx, studentID, 4))
	require.NoError(t, store.RestoreStock(ctx, itemID, 1))

	student, err = store.GetStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, 4, student.TicketCount)
	item, err = store.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestPostgresLedgerStore_ConcurrentDecrement(t *testing.T) {
	ctx := context.Background()
	store, _, itemID := newPostgresLedgerStore(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.ConditionalDecrementStock(ctx, itemID, 1); err == nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, taken)
	item, err := store.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestPostgresLedgerStore_PurchaseRecords(t *testing.T) {
	ctx := context.Background()
	store, studentID, itemID := newPostgresLedgerStore(t)

	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p, err := store.RecordPurchase(ctx, studentID, itemID, 3, ts)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Cost)
	assert.False(t, p.IsDelivered)
	assert.True(t, ts.Equal(p.Timestamp))

	_, err = store.RecordPurchase(ctx, 9999, itemID, 3, ts)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	got, err := store.GetPurchase(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, store.DeletePurchase(ctx, p.ID))
	assert.ErrorIs(t, store.DeletePurchase(ctx, p.ID), apperrors.ErrPurchaseNotFound)
	_, err = store.GetPurchase(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
}
