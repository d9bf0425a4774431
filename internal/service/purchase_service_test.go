package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"classroom-market/internal/model"
	"classroom-market/internal/queue"
	"classroom-market/internal/repository"
	"classroom-market/internal/service"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errStoreDown = errors.New("store unavailable")
	errQueueDown = errors.New("queue down")
)

// failingQueue rejects every publish.
type failingQueue struct{}

func (failingQueue) Publish(context.Context, *model.ReconcileTask) error {
	return errQueueDown
}

func (failingQueue) Subscribe(context.Context) (<-chan queue.Delivery, error) {
	return nil, errQueueDown
}

// atomicCancelStore reports a fixed outcome for CancelUndelivered.
type atomicCancelStore struct {
	*faultyStore
	cancelled *model.Purchase
	err       error
	calls     int
}

func (s *atomicCancelStore) CancelUndelivered(_ context.Context, purchaseID int) (*model.Purchase, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.cancelled, nil
}

// faultyStore wraps the memory ledger and fails selected writes.
type faultyStore struct {
	*repository.MemoryLedgerStore

	failDecrement      error
	failDeduct         error
	failRecord         error
	failRestoreStock   error
	failRestoreTickets error
	failDelete         error
}

func (s *faultyStore) ConditionalDecrementStock(ctx context.Context, itemID int, expectedMinimum int) (*model.Item, error) {
	if s.failDecrement != nil {
		return nil, s.failDecrement
	}
	return s.MemoryLedgerStore.ConditionalDecrementStock(ctx, itemID, expectedMinimum)
}

func (s *faultyStore) ConditionalDeductTickets(ctx context.Context, studentID int, amount int) (*model.Student, error) {
	if s.failDeduct != nil {
		return nil, s.failDeduct
	}
	return s.MemoryLedgerStore.ConditionalDeductTickets(ctx, studentID, amount)
}

func (s *faultyStore) RecordPurchase(ctx context.Context, studentID, itemID, cost int, ts time.Time) (*model.Purchase, error) {
	if s.failRecord != nil {
		return nil, s.failRecord
	}
	return s.MemoryLedgerStore.RecordPurchase(ctx, studentID, itemID, cost, ts)
}

func (s *faultyStore) RestoreStock(ctx context.Context, itemID int, amount int) error {
	if s.failRestoreStock != nil {
		return s.failRestoreStock
	}
	return s.MemoryLedgerStore.RestoreStock(ctx, itemID, amount)
}

func (s *faultyStore) RestoreTickets(ctx context.Context, studentID int, amount int) error {
	if s.failRestoreTickets != nil {
		return s.failRestoreTickets
	}
	return s.MemoryLedgerStore.RestoreTickets(ctx, studentID, amount)
}

func (s *faultyStore) DeletePurchase(ctx context.Context, purchaseID int) error {
	if s.failDelete != nil {
		return s.failDelete
	}
	return s.MemoryLedgerStore.DeletePurchase(ctx, purchaseID)
}

type engineFixture struct {
	store *faultyStore
	queue queue.ReconcileQueue
	svc   service.PurchaseService
}

func newEngineFixture() *engineFixture {
	return newEngineFixtureWithQueue(queue.NewMemoryReconcileQueue(16, 10*time.Millisecond))
}

func newEngineFixtureWithQueue(q queue.ReconcileQueue) *engineFixture {
	store := &faultyStore{MemoryLedgerStore: repository.NewMemoryLedgerStore()}
	return &engineFixture{
		store: store,
		queue: q,
		svc:   service.NewPurchaseService(store, nil, q),
	}
}

func (f *engineFixture) student(t *testing.T, tickets int) *model.Student {
	t.Helper()
	return f.store.AddStudent(model.Student{Name: "student", Grade: 4, TicketCount: tickets, Password: "1234"})
}

func (f *engineFixture) item(t *testing.T, cost, quantity int) *model.Item {
	t.Helper()
	return f.store.AddItem(model.Item{Name: "item", Cost: cost, Quantity: quantity})
}

func (f *engineFixture) balance(t *testing.T, studentID int) int {
	t.Helper()
	s, err := f.store.GetStudent(context.Background(), studentID)
	require.NoError(t, err)
	return s.TicketCount
}

func (f *engineFixture) stock(t *testing.T, itemID int) int {
	t.Helper()
	i, err := f.store.GetItem(context.Background(), itemID)
	require.NoError(t, err)
	return i.Quantity
}

// nextTask reads one published reconcile task or fails the test.
func (f *engineFixture) nextTask(t *testing.T) *model.ReconcileTask {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ch, err := f.queue.Subscribe(ctx)
	require.NoError(t, err)
	select {
	case d, ok := <-ch:
		require.True(t, ok)
		d.Ack()
		return d.Data
	case <-ctx.Done():
		t.Fatal("no reconcile task published")
		return nil
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 4, 2)

		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, res.StudentBalance)
		assert.Equal(t, 1, res.ItemQuantity)
		assert.Equal(t, it.ID, res.ItemID)

		p, err := f.store.GetPurchase(ctx, res.PurchaseID)
		require.NoError(t, err)
		assert.Equal(t, 4, p.Cost)
		assert.False(t, p.IsDelivered)
	})

	t.Run("Failed - ItemNotFound", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)

		_, err := f.svc.Purchase(ctx, st.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
		assert.Equal(t, 10, f.balance(t, st.ID))
	})

	t.Run("Failed - StudentNotFound", func(t *testing.T) {
		f := newEngineFixture()
		it := f.item(t, 1, 1)

		_, err := f.svc.Purchase(ctx, 999, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, 1, f.stock(t, it.ID))
	})

	t.Run("Failed - SoldOut", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 1, 0)

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrSoldOut)
		assert.NotErrorIs(t, err, apperrors.ErrSoldOutConcurrent)
		assert.Equal(t, 10, f.balance(t, st.ID))
	})

	t.Run("Failed - InsufficientTickets", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 3)
		it := f.item(t, 4, 1)

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
		assert.Equal(t, 3, f.balance(t, st.ID))
		assert.Equal(t, 1, f.stock(t, it.ID))
	})

	t.Run("Failed - stock guard lost to a concurrent buyer", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 2, 1)
		f.store.failDecrement = apperrors.ErrConditionNotMet

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrSoldOutConcurrent)
		assert.ErrorIs(t, err, apperrors.ErrSoldOut)
		assert.Equal(t, 10, f.balance(t, st.ID))
		assert.Empty(t, f.store.Purchases())
	})

	t.Run("Failed - ticket guard not satisfied restores stock", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 2, 1)
		f.store.failDeduct = apperrors.ErrConditionNotMet

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
		assert.NotErrorIs(t, err, apperrors.ErrCompensationFailed)
		assert.Equal(t, 1, f.stock(t, it.ID))
		assert.Equal(t, 10, f.balance(t, st.ID))
	})

	t.Run("Failed - record creation rolls back stock and tickets", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		f.store.failRecord = errStoreDown

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrRecordCreationFailed)
		assert.ErrorIs(t, err, errStoreDown)
		assert.NotErrorIs(t, err, apperrors.ErrCompensationFailed)
		assert.Equal(t, 1, f.stock(t, it.ID))
		assert.Equal(t, 10, f.balance(t, st.ID))
		assert.Empty(t, f.store.Purchases())
	})

	t.Run("Failed - compensation failure keeps the original cause", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		f.store.failRecord = errStoreDown
		f.store.failRestoreStock = errStoreDown

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.Error(t, err)

		var compErr *apperrors.CompensationError
		require.ErrorAs(t, err, &compErr)
		assert.ErrorIs(t, err, apperrors.ErrCompensationFailed)
		assert.ErrorIs(t, err, apperrors.ErrRecordCreationFailed)
		assert.Len(t, compErr.Failed, 1)

		// tickets were still restored, the unit was not
		assert.Equal(t, 10, f.balance(t, st.ID))
		assert.Equal(t, 0, f.stock(t, it.ID))

		task := f.nextTask(t)
		assert.Equal(t, model.ReconcileKindCompensation, task.Kind)
		assert.Equal(t, st.ID, task.StudentID)
		assert.Equal(t, it.ID, task.ItemID)
		assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileRestoreStock, Amount: 1}}, task.Steps)
		assert.NotEmpty(t, task.ID)
	})

	t.Run("Failed - compensation after ticket guard", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		f.store.failDeduct = apperrors.ErrConditionNotMet
		f.store.failRestoreStock = errStoreDown

		_, err := f.svc.Purchase(ctx, st.ID, it.ID)
		assert.ErrorIs(t, err, apperrors.ErrCompensationFailed)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
	})
}

func TestPurchase_ConcreteScenario(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture()
	a := f.student(t, 10)
	b := f.student(t, 10)
	x := f.item(t, 4, 1)

	res, err := f.svc.Purchase(ctx, a.ID, x.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, f.balance(t, a.ID))
	assert.Equal(t, 0, f.stock(t, x.ID))

	_, err = f.svc.Purchase(ctx, b.ID, x.ID)
	assert.ErrorIs(t, err, apperrors.ErrSoldOut)
	assert.Equal(t, 10, f.balance(t, b.ID))

	require.NoError(t, f.svc.CancelPurchase(ctx, res.PurchaseID))
	assert.Equal(t, 10, f.balance(t, a.ID))
	assert.Equal(t, 1, f.stock(t, x.ID))
	assert.Empty(t, f.store.Purchases())
}

func TestPurchase_NoOversell(t *testing.T) {
	const (
		stock   = 3
		buyers  = 20
		cost    = 2
		balance = 10
	)
	ctx := context.Background()
	f := newEngineFixture()
	it := f.item(t, cost, stock)

	students := make([]*model.Student, buyers)
	for i := range students {
		students[i] = f.student(t, balance)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i, st := range students {
		wg.Add(1)
		go func(i, studentID int) {
			defer wg.Done()
			_, errs[i] = f.svc.Purchase(ctx, studentID, it.ID)
		}(i, st.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrSoldOut)
	}
	assert.Equal(t, stock, succeeded)
	assert.Equal(t, 0, f.stock(t, it.ID))
	assert.Len(t, f.store.Purchases(), stock)

	spent := 0
	for _, st := range students {
		b := f.balance(t, st.ID)
		assert.GreaterOrEqual(t, b, 0)
		spent += balance - b
	}
	assert.Equal(t, stock*cost, spent)
}

func TestPurchase_NoOversell_LastUnit(t *testing.T) {
	ctx := context.Background()
	for round := 0; round < 50; round++ {
		f := newEngineFixture()
		a := f.student(t, 10)
		b := f.student(t, 10)
		it := f.item(t, 1, 1)

		var wg sync.WaitGroup
		var errA, errB error
		wg.Add(2)
		go func() { defer wg.Done(); _, errA = f.svc.Purchase(ctx, a.ID, it.ID) }()
		go func() { defer wg.Done(); _, errB = f.svc.Purchase(ctx, b.ID, it.ID) }()
		wg.Wait()

		if errA == nil {
			require.ErrorIs(t, errB, apperrors.ErrSoldOut)
		} else {
			require.ErrorIs(t, errA, apperrors.ErrSoldOut)
			require.NoError(t, errB)
		}
		require.Equal(t, 0, f.stock(t, it.ID))
	}
}

func TestPurchase_NoOverspend(t *testing.T) {
	ctx := context.Background()
	for round := 0; round < 50; round++ {
		f := newEngineFixture()
		st := f.student(t, 5)
		first := f.item(t, 3, 5)
		second := f.item(t, 3, 5)

		var wg sync.WaitGroup
		var err1, err2 error
		wg.Add(2)
		go func() { defer wg.Done(); _, err1 = f.svc.Purchase(ctx, st.ID, first.ID) }()
		go func() { defer wg.Done(); _, err2 = f.svc.Purchase(ctx, st.ID, second.ID) }()
		wg.Wait()

		if err1 == nil {
			require.ErrorIs(t, err2, apperrors.ErrInsufficientTickets)
		} else {
			require.ErrorIs(t, err1, apperrors.ErrInsufficientTickets)
			require.NoError(t, err2)
		}
		require.Equal(t, 2, f.balance(t, st.ID))
		// the loser's unit, if it was taken, was given back
		require.Equal(t, 9, f.stock(t, first.ID)+f.stock(t, second.ID))
		require.Len(t, f.store.Purchases(), 1)
	}
}

func TestPurchase_CompensationFailureWithFullReconcileQueue(t *testing.T) {
	f := newEngineFixtureWithQueue(queue.NewMemoryReconcileQueue(1, time.Second))
	st := f.student(t, 10)
	it := f.item(t, 1, 5)
	f.store.failRecord = errStoreDown
	f.store.failRestoreStock = errStoreDown

	// nothing drains the queue, so the second task finds it full
	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		done := make(chan error, 1)
		go func() {
			_, err := f.svc.Purchase(ctx, st.ID, it.ID)
			done <- err
		}()

		select {
		case err := <-done:
			var compErr *apperrors.CompensationError
			require.ErrorAs(t, err, &compErr, "purchase %d", i)
			assert.ErrorIs(t, err, apperrors.ErrRecordCreationFailed)
		case <-time.After(3 * time.Second):
			t.Fatalf("purchase %d did not return", i)
		}
		cancel()
	}

	assert.Equal(t, 10, f.balance(t, st.ID))
	assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileRestoreStock, Amount: 1}}, f.nextTask(t).Steps)
}

func TestCancelPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		const rounds = 25
		f := newEngineFixture()
		st := f.student(t, 7)
		it := f.item(t, 3, 4)

		for i := 0; i < rounds; i++ {
			res, err := f.svc.Purchase(ctx, st.ID, it.ID)
			require.NoError(t, err)
			require.Equal(t, 4, f.balance(t, st.ID))
			require.Equal(t, 3, f.stock(t, it.ID))

			require.NoError(t, f.svc.CancelPurchase(ctx, res.PurchaseID))
			_, err = f.store.GetPurchase(ctx, res.PurchaseID)
			require.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
		}
		assert.Equal(t, 7, f.balance(t, st.ID))
		assert.Equal(t, 4, f.stock(t, it.ID))
		assert.Empty(t, f.store.Purchases())
	})

	t.Run("Refunds the price paid, not the current price", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)

		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)

		// a teacher edit changes the price after the sale
		require.NoError(t, f.store.UpdateItem(it.ID, func(i *model.Item) { i.Cost = 8 }))
		require.NoError(t, f.svc.CancelPurchase(ctx, res.PurchaseID))
		assert.Equal(t, 10, f.balance(t, st.ID))
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		f := newEngineFixture()
		err := f.svc.CancelPurchase(ctx, 42)
		assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
	})

	t.Run("Failed - AlreadyDelivered", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)
		require.NoError(t, f.store.SetDelivered(res.PurchaseID, true))

		err = f.svc.CancelPurchase(ctx, res.PurchaseID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyDelivered)
		assert.Equal(t, 7, f.balance(t, st.ID))
		assert.Equal(t, 0, f.stock(t, it.ID))
	})

	t.Run("Failed - ReversalFailed attempts every step", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)

		f.store.failRestoreStock = errStoreDown
		err = f.svc.CancelPurchase(ctx, res.PurchaseID)
		assert.ErrorIs(t, err, apperrors.ErrReversalFailed)
		assert.ErrorIs(t, err, errStoreDown)

		// the other two steps still ran
		assert.Equal(t, 10, f.balance(t, st.ID))
		assert.Empty(t, f.store.Purchases())
		assert.Equal(t, 0, f.stock(t, it.ID))

		task := f.nextTask(t)
		assert.Equal(t, model.ReconcileKindReversal, task.Kind)
		assert.Equal(t, res.PurchaseID, task.PurchaseID)
		assert.False(t, task.DoubleRefund)
		assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileRestoreStock, Amount: 1}}, task.Steps)
	})

	t.Run("Failed - purchase removed concurrently flags a double refund", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 1)
		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)

		f.store.failDelete = apperrors.ErrPurchaseNotFound
		err = f.svc.CancelPurchase(ctx, res.PurchaseID)
		assert.ErrorIs(t, err, apperrors.ErrReversalFailed)

		task := f.nextTask(t)
		assert.True(t, task.DoubleRefund)
		assert.Contains(t, task.Cause, "possible double refund")
		assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileDeletePurchase}}, task.Steps)
	})

	t.Run("Atomic store cancels in one call", func(t *testing.T) {
		base := newEngineFixture()
		store := &atomicCancelStore{
			faultyStore: base.store,
			cancelled:   &model.Purchase{ID: 5, StudentID: 1, ItemID: 2, Cost: 3},
		}
		// step writes would fail if the engine fell back to them
		base.store.failRestoreTickets = errStoreDown
		svc := service.NewPurchaseService(store, nil, base.queue)

		require.NoError(t, svc.CancelPurchase(ctx, 5))
		assert.Equal(t, 1, store.calls)

		store.err = apperrors.ErrAlreadyDelivered
		assert.ErrorIs(t, svc.CancelPurchase(ctx, 5), apperrors.ErrAlreadyDelivered)
	})
}

func TestDeleteDeliveredPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - balance neutral", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 2)
		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)
		require.NoError(t, f.store.SetDelivered(res.PurchaseID, true))

		require.NoError(t, f.svc.DeleteDeliveredPurchase(ctx, res.PurchaseID))
		assert.Equal(t, 7, f.balance(t, st.ID))
		assert.Equal(t, 1, f.stock(t, it.ID))
		assert.Empty(t, f.store.Purchases())
	})

	t.Run("Failed - NotDelivered", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 10)
		it := f.item(t, 3, 2)
		res, err := f.svc.Purchase(ctx, st.ID, it.ID)
		require.NoError(t, err)

		err = f.svc.DeleteDeliveredPurchase(ctx, res.PurchaseID)
		assert.ErrorIs(t, err, apperrors.ErrNotDelivered)
		assert.Len(t, f.store.Purchases(), 1)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		f := newEngineFixture()
		err := f.svc.DeleteDeliveredPurchase(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrPurchaseNotFound)
	})
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies every step", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 4)
		it := f.item(t, 3, 0)

		err := f.svc.Reconcile(ctx, &model.ReconcileTask{
			ID:        "t1",
			Kind:      model.ReconcileKindCompensation,
			StudentID: st.ID,
			ItemID:    it.ID,
			Steps: []model.ReconcileStep{
				{Action: model.ReconcileRestoreStock, Amount: 1},
				{Action: model.ReconcileRestoreTickets, Amount: 3},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, f.balance(t, st.ID))
		assert.Equal(t, 1, f.stock(t, it.ID))
	})

	t.Run("Missing purchase counts as deleted", func(t *testing.T) {
		f := newEngineFixture()
		err := f.svc.Reconcile(ctx, &model.ReconcileTask{
			ID:         "t2",
			Kind:       model.ReconcileKindReversal,
			PurchaseID: 99,
			Steps:      []model.ReconcileStep{{Action: model.ReconcileDeletePurchase}},
		})
		assert.NoError(t, err)
	})

	t.Run("Nothing applied returns the error", func(t *testing.T) {
		f := newEngineFixture()
		it := f.item(t, 1, 0)
		f.store.failRestoreStock = errStoreDown

		err := f.svc.Reconcile(ctx, &model.ReconcileTask{
			ID:     "t3",
			ItemID: it.ID,
			Steps:  []model.ReconcileStep{{Action: model.ReconcileRestoreStock, Amount: 1}},
		})
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("Partial apply republishes the rest", func(t *testing.T) {
		f := newEngineFixture()
		st := f.student(t, 0)
		it := f.item(t, 1, 0)
		f.store.failRestoreStock = errStoreDown

		err := f.svc.Reconcile(ctx, &model.ReconcileTask{
			ID:        "t4",
			Kind:      model.ReconcileKindCompensation,
			StudentID: st.ID,
			ItemID:    it.ID,
			Steps: []model.ReconcileStep{
				{Action: model.ReconcileRestoreStock, Amount: 1},
				{Action: model.ReconcileRestoreTickets, Amount: 2},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, f.balance(t, st.ID))

		task := f.nextTask(t)
		assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileRestoreStock, Amount: 1}}, task.Steps)
		assert.NotEqual(t, "t4", task.ID)
	})

	t.Run("Partial apply with a failed requeue keeps the rest for retry", func(t *testing.T) {
		f := newEngineFixtureWithQueue(failingQueue{})
		st := f.student(t, 0)
		it := f.item(t, 1, 0)
		f.store.failRestoreTickets = errStoreDown

		task := &model.ReconcileTask{
			ID:        "t6",
			Kind:      model.ReconcileKindCompensation,
			StudentID: st.ID,
			ItemID:    it.ID,
			Steps: []model.ReconcileStep{
				{Action: model.ReconcileRestoreStock, Amount: 1},
				{Action: model.ReconcileRestoreTickets, Amount: 2},
			},
		}
		err := f.svc.Reconcile(ctx, task)
		require.ErrorIs(t, err, errQueueDown)
		assert.Equal(t, 1, f.stock(t, it.ID))
		assert.Equal(t, []model.ReconcileStep{{Action: model.ReconcileRestoreTickets, Amount: 2}}, task.Steps)

		// the retried delivery only restores the tickets
		f.store.failRestoreTickets = nil
		require.NoError(t, f.svc.Reconcile(ctx, task))
		assert.Equal(t, 2, f.balance(t, st.ID))
		assert.Equal(t, 1, f.stock(t, it.ID))
	})

	t.Run("Unknown action", func(t *testing.T) {
		f := newEngineFixture()
		err := f.svc.Reconcile(ctx, &model.ReconcileTask{
			ID:    "t5",
			Steps: []model.ReconcileStep{{Action: "refund_everyone"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrReconcileUnsupported)
	})
}
