package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"classroom-market/internal/model"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepository_ListAndFilter(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewPurchaseRepository(pool)
	ctx := context.Background()

	mina := createTestStudent(t, pool, "Mina", 5, 0)
	jun := createTestStudent(t, pool, "Jun", 3, 0)
	pencil := createTestItem(t, pool, "Pencil", 1, 10)
	sticker := createTestItem(t, pool, "Sticker", 2, 10)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, mina, pencil, 1, base)
	require.NoError(t, err)
	second, err := repo.Create(ctx, mina, sticker, 2, base.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.Create(ctx, jun, sticker, 2, base.Add(2*time.Minute))
	require.NoError(t, err)

	_, err = repo.SetDelivered(ctx, first.ID, true)
	require.NoError(t, err)

	all, err := repo.List(ctx, model.DeliveryFilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Jun", all[0].StudentName)
	assert.Equal(t, model.Grade(3), all[0].StudentGrade)

	pending, err := repo.List(ctx, model.DeliveryFilterPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	delivered, err := repo.List(ctx, model.DeliveryFilterDelivered)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, "Pencil", delivered[0].ItemName)

	history, err := repo.ListByStudentID(ctx, mina)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, 2, history[0].ItemCost)

	n, err := repo.Count(ctx, model.DeliveryFilterPending)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = repo.Count(ctx, model.DeliveryFilterAll)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPurchaseRepository_PopularItems(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewPurchaseRepository(pool)
	ctx := context.Background()

	mina := createTestStudent(t, pool, "Mina", 5, 0)
	jun := createTestStudent(t, pool, "Jun", 3, 0)
	pencil := createTestItem(t, pool, "Pencil", 1, 10)
	sticker := createTestItem(t, pool, "Sticker", 2, 10)

	now := time.Now()
	for _, p := range []struct{ student, item int }{
		{mina, sticker}, {jun, sticker}, {jun, sticker}, {mina, pencil},
	} {
		_, err := repo.Create(ctx, p.student, p.item, 1, now)
		require.NoError(t, err)
	}

	popular, err := repo.PopularItems(ctx, nil, 3)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, model.PopularItem{ItemID: sticker, ItemName: "Sticker", PurchaseCount: 3}, popular[0])

	grade := model.Grade(5)
	popular, err = repo.PopularItems(ctx, &grade, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "Pencil", popular[0].ItemName)
}

func TestPurchaseRepository_SetDeliveredAndDelete(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewPurchaseRepository(pool)
	ctx := context.Background()

	mina := createTestStudent(t, pool, "Mina", 5, 0)
	pencil := createTestItem(t, pool, "Pencil", 1, 10)
	p, err := repo.Create(ctx, mina, pencil, 1, time.Now())
	require.NoError(t, err)

	updated, err := repo.SetDelivered(ctx, p.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsDelivered)

	_, err = repo.SetDelivered(ctx, 9999, true)
	assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
}

func TestPurchaseRepository_CancelUndelivered(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewPurchaseRepository(pool)
	students := repository.NewStudentRepository(pool)
	items := repository.NewItemRepository(pool)
	ctx := context.Background()

	mina := createTestStudent(t, pool, "Mina", 5, 7)
	pencil := createTestItem(t, pool, "Pencil", 3, 0)
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		p, err := repo.Create(ctx, mina, pencil, 3, ts)
		require.NoError(t, err)

		cancelled, err := repo.CancelUndelivered(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, cancelled.Cost)

		student, err := students.FindByID(ctx, mina)
		require.NoError(t, err)
		assert.Equal(t, 10, student.TicketCount)
		item, err := items.FindByID(ctx, pencil)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)

		_, err = repo.CancelUndelivered(ctx, p.ID)
		assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
	})

	t.Run("Failed - AlreadyDelivered leaves everything unchanged", func(t *testing.T) {
		p, err := repo.Create(ctx, mina, pencil, 3, ts)
		require.NoError(t, err)
		_, err = repo.SetDelivered(ctx, p.ID, true)
		require.NoError(t, err)

		_, err = repo.CancelUndelivered(ctx, p.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyDelivered)

		student, err := students.FindByID(ctx, mina)
		require.NoError(t, err)
		assert.Equal(t, 10, student.TicketCount)
		_, err = repo.FindByID(ctx, p.ID)
		assert.NoError(t, err)
	})

	t.Run("Concurrent cancels refund once", func(t *testing.T) {
		p, err := repo.Create(ctx, mina, pencil, 3, ts)
		require.NoError(t, err)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.CancelUndelivered(ctx, p.ID); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		student, err := students.FindByID(ctx, mina)
		require.NoError(t, err)
		assert.Equal(t, 13, student.TicketCount)
	})
}
