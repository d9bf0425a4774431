package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom-market/internal/model"
	"classroom-market/internal/queue"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"
	"classroom-market/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PurchaseService interface {
	// Purchase buys one unit of itemID for studentID.
	Purchase(ctx context.Context, studentID, itemID int) (*model.PurchaseResult, error)
	// CancelPurchase refunds and removes a purchase that was not delivered yet.
	CancelPurchase(ctx context.Context, purchaseID int) error
	// DeleteDeliveredPurchase removes the record of a delivered purchase without refunding.
	DeleteDeliveredPurchase(ctx context.Context, purchaseID int) error
	SetDelivered(ctx context.Context, purchaseID int, delivered bool) (*model.Purchase, error)
	List(ctx context.Context, filter model.DeliveryFilter) ([]*model.PurchaseDetail, error)
	// Reconcile replays the outstanding steps of a failed compensation or reversal.
	Reconcile(ctx context.Context, task *model.ReconcileTask) error
}

const publishTimeout = 2 * time.Second

type PurchaseServiceImpl struct {
	store          repository.LedgerStore
	repository     repository.PurchaseRepository
	reconcileQueue queue.ReconcileQueue
	now            func() time.Time
	log            *zap.Logger
}

// NewPurchaseService wires the engine. purchaseRepository backs the listing
// and delivery operations only; reconcileQueue may be nil, in which case
// failed compensations are logged but not published.
func NewPurchaseService(
	store repository.LedgerStore,
	purchaseRepository repository.PurchaseRepository,
	reconcileQueue queue.ReconcileQueue,
) PurchaseService {
	return &PurchaseServiceImpl{
		store:          store,
		repository:     purchaseRepository,
		reconcileQueue: reconcileQueue,
		now:            func() time.Time { return time.Now().UTC() },
		log:            logger.WithComponent("purchase"),
	}
}

// ledgerWrite is a compensating or reversing write together with the
// reconcile step that replays it.
type ledgerWrite struct {
	step  model.ReconcileStep
	apply func(ctx context.Context) error
}

func (s *PurchaseServiceImpl) Purchase(ctx context.Context, studentID, itemID int) (*model.PurchaseResult, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.InStock() {
		return nil, apperrors.ErrSoldOut
	}

	student, err := s.store.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	cost := item.Cost
	if !student.CanAfford(cost) {
		return nil, apperrors.ErrInsufficientTickets
	}

	updatedItem, err := s.store.ConditionalDecrementStock(ctx, itemID, 1)
	if err != nil {
		if errors.Is(err, apperrors.ErrConditionNotMet) {
			return nil, apperrors.ErrSoldOutConcurrent
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	restoreStock := ledgerWrite{
		step: model.ReconcileStep{Action: model.ReconcileRestoreStock, Amount: 1},
		apply: func(ctx context.Context) error {
			return s.store.RestoreStock(ctx, itemID, 1)
		},
	}

	updatedStudent, err := s.store.ConditionalDeductTickets(ctx, studentID, cost)
	if err != nil {
		cause := apperrors.ErrInsufficientTickets
		if !errors.Is(err, apperrors.ErrConditionNotMet) {
			cause = fmt.Errorf("deduct tickets: %w", err)
		}
		return nil, s.compensate(ctx, studentID, itemID, cause, restoreStock)
	}

	purchase, err := s.store.RecordPurchase(ctx, studentID, itemID, cost, s.now())
	if err != nil {
		cause := fmt.Errorf("%w: %w", apperrors.ErrRecordCreationFailed, err)
		restoreTickets := ledgerWrite{
			step: model.ReconcileStep{Action: model.ReconcileRestoreTickets, Amount: cost},
			apply: func(ctx context.Context) error {
				return s.store.RestoreTickets(ctx, studentID, cost)
			},
		}
		return nil, s.compensate(ctx, studentID, itemID, cause, restoreStock, restoreTickets)
	}

	s.log.Info("purchase recorded",
		zap.Int("purchase_id", purchase.ID),
		zap.Int("student_id", studentID),
		zap.Int("item_id", itemID),
		zap.Int("cost", cost),
		zap.Int("student_balance", updatedStudent.TicketCount))

	return &model.PurchaseResult{
		PurchaseID:     purchase.ID,
		ItemID:         itemID,
		StudentBalance: updatedStudent.TicketCount,
		ItemQuantity:   updatedItem.Quantity,
	}, nil
}

// compensate undoes the writes already applied by a failed purchase and
// returns cause when they all succeed.
func (s *PurchaseServiceImpl) compensate(ctx context.Context, studentID, itemID int, cause error, writes ...ledgerWrite) error {
	pending, errs := s.applyAll(ctx, writes)
	if len(errs) == 0 {
		s.log.Warn("purchase compensated",
			zap.Int("student_id", studentID),
			zap.Int("item_id", itemID),
			zap.NamedError("cause", cause))
		return cause
	}

	s.log.Error("purchase compensation failed, manual reconciliation required",
		zap.Int("student_id", studentID),
		zap.Int("item_id", itemID),
		zap.NamedError("cause", cause),
		zap.Errors("compensation_errors", errs))

	_ = s.publishReconcile(ctx, &model.ReconcileTask{
		Kind:      model.ReconcileKindCompensation,
		StudentID: studentID,
		ItemID:    itemID,
		Steps:     pending,
		Cause:     cause.Error(),
	})

	return &apperrors.CompensationError{Cause: cause, Failed: errs}
}

// applyAll attempts every write even after one fails and returns the steps
// that did not apply. Writes run on a context detached from the caller's
// cancellation so an abandoned request still restores what it took.
func (s *PurchaseServiceImpl) applyAll(ctx context.Context, writes []ledgerWrite) ([]model.ReconcileStep, []error) {
	ctx = context.WithoutCancel(ctx)

	var pending []model.ReconcileStep
	var errs []error
	for _, w := range writes {
		if err := w.apply(ctx); err != nil {
			pending = append(pending, w.step)
			errs = append(errs, fmt.Errorf("%s: %w", w.step.Action, err))
		}
	}
	return pending, errs
}

// publishReconcile stamps task and hands it to the queue. The publish is
// detached from the caller's cancellation but bounded by publishTimeout.
func (s *PurchaseServiceImpl) publishReconcile(ctx context.Context, task *model.ReconcileTask) error {
	task.ID = uuid.New().String()
	task.CreatedAt = s.now()

	if s.reconcileQueue == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.reconcileQueue.Publish(ctx, task); err != nil {
		s.log.Error("failed to publish reconcile task",
			zap.String("task_id", task.ID),
			zap.String("kind", string(task.Kind)),
			zap.Any("steps", task.Steps),
			zap.Error(err))
		return fmt.Errorf("publish reconcile task: %w", err)
	}
	return nil
}

func (s *PurchaseServiceImpl) CancelPurchase(ctx context.Context, purchaseID int) error {
	if canceller, ok := s.store.(repository.PurchaseCanceller); ok {
		purchase, err := canceller.CancelUndelivered(ctx, purchaseID)
		if err != nil {
			return err
		}
		s.logCancelled(purchase)
		return nil
	}

	purchase, err := s.store.GetPurchase(ctx, purchaseID)
	if err != nil {
		return err
	}
	if purchase.IsDelivered {
		return apperrors.ErrAlreadyDelivered
	}

	writes := []ledgerWrite{
		{
			step: model.ReconcileStep{Action: model.ReconcileRestoreTickets, Amount: purchase.Cost},
			apply: func(ctx context.Context) error {
				return s.store.RestoreTickets(ctx, purchase.StudentID, purchase.Cost)
			},
		},
		{
			step: model.ReconcileStep{Action: model.ReconcileRestoreStock, Amount: 1},
			apply: func(ctx context.Context) error {
				return s.store.RestoreStock(ctx, purchase.ItemID, 1)
			},
		},
		{
			step: model.ReconcileStep{Action: model.ReconcileDeletePurchase},
			apply: func(ctx context.Context) error {
				return s.store.DeletePurchase(ctx, purchase.ID)
			},
		},
	}

	pending, errs := s.applyAll(ctx, writes)
	if len(errs) > 0 {
		// the purchase vanished after the lookup: another cancel or delete
		// won, and the refunds above may have been paid twice
		doubleRefund := errors.Is(errors.Join(errs...), apperrors.ErrPurchaseNotFound)

		s.log.Error("purchase reversal failed, manual reconciliation required",
			zap.Int("purchase_id", purchase.ID),
			zap.Int("student_id", purchase.StudentID),
			zap.Int("item_id", purchase.ItemID),
			zap.Bool("possible_double_refund", doubleRefund),
			zap.Errors("reversal_errors", errs))

		cause := errors.Join(errs...).Error()
		if doubleRefund {
			cause = "possible double refund: " + cause
		}
		_ = s.publishReconcile(ctx, &model.ReconcileTask{
			Kind:         model.ReconcileKindReversal,
			StudentID:    purchase.StudentID,
			ItemID:       purchase.ItemID,
			PurchaseID:   purchase.ID,
			Steps:        pending,
			Cause:        cause,
			DoubleRefund: doubleRefund,
		})
		return errors.Join(append([]error{apperrors.ErrReversalFailed}, errs...)...)
	}

	s.logCancelled(purchase)
	return nil
}

func (s *PurchaseServiceImpl) logCancelled(purchase *model.Purchase) {
	s.log.Info("purchase cancelled",
		zap.Int("purchase_id", purchase.ID),
		zap.Int("student_id", purchase.StudentID),
		zap.Int("refund", purchase.Cost))
}

func (s *PurchaseServiceImpl) DeleteDeliveredPurchase(ctx context.Context, purchaseID int) error {
	purchase, err := s.store.GetPurchase(ctx, purchaseID)
	if err != nil {
		return err
	}
	if !purchase.IsDelivered {
		return apperrors.ErrNotDelivered
	}
	return s.store.DeletePurchase(ctx, purchase.ID)
}

func (s *PurchaseServiceImpl) SetDelivered(ctx context.Context, purchaseID int, delivered bool) (*model.Purchase, error) {
	return s.repository.SetDelivered(ctx, purchaseID, delivered)
}

func (s *PurchaseServiceImpl) List(ctx context.Context, filter model.DeliveryFilter) ([]*model.PurchaseDetail, error) {
	if filter == "" {
		filter = model.DeliveryFilterAll
	}
	if !filter.IsValid() {
		return nil, fmt.Errorf("%w: unknown delivery filter %q", apperrors.ErrInvalidInput, filter)
	}
	return s.repository.List(ctx, filter)
}

// Reconcile applies every step of task. A missing purchase counts as
// deleted. When only some steps apply, the rest are published as a new task
// and nil is returned so the original delivery is not replayed twice. If
// that publish fails, task is narrowed to the remaining steps and an error
// is returned so the delivery is retried with them.
func (s *PurchaseServiceImpl) Reconcile(ctx context.Context, task *model.ReconcileTask) error {
	if task.DoubleRefund {
		s.log.Error("reconcile task flags a possible double refund, check the student balance",
			zap.String("task_id", task.ID),
			zap.Int("purchase_id", task.PurchaseID),
			zap.Int("student_id", task.StudentID))
	}

	writes := make([]ledgerWrite, 0, len(task.Steps))
	for _, step := range task.Steps {
		w, err := s.reconcileWrite(task, step)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}

	pending, errs := s.applyAll(ctx, writes)
	switch {
	case len(errs) == 0:
		s.log.Info("reconcile task applied",
			zap.String("task_id", task.ID),
			zap.String("kind", string(task.Kind)),
			zap.Int("steps", len(task.Steps)))
		return nil
	case len(pending) == len(writes):
		return errors.Join(errs...)
	}

	s.log.Warn("reconcile task partially applied",
		zap.String("task_id", task.ID),
		zap.Int("pending_steps", len(pending)),
		zap.Errors("errors", errs))

	next := *task
	next.Steps = pending
	next.Cause = errors.Join(errs...).Error()
	if err := s.publishReconcile(ctx, &next); err != nil {
		task.Steps = pending
		return fmt.Errorf("requeue %d pending steps: %w", len(pending), err)
	}
	return nil
}

func (s *PurchaseServiceImpl) reconcileWrite(task *model.ReconcileTask, step model.ReconcileStep) (ledgerWrite, error) {
	w := ledgerWrite{step: step}
	switch step.Action {
	case model.ReconcileRestoreStock:
		w.apply = func(ctx context.Context) error {
			return s.store.RestoreStock(ctx, task.ItemID, step.Amount)
		}
	case model.ReconcileRestoreTickets:
		w.apply = func(ctx context.Context) error {
			return s.store.RestoreTickets(ctx, task.StudentID, step.Amount)
		}
	case model.ReconcileDeletePurchase:
		w.apply = func(ctx context.Context) error {
			err := s.store.DeletePurchase(ctx, task.PurchaseID)
			if errors.Is(err, apperrors.ErrPurchaseNotFound) {
				return nil
			}
			return err
		}
	default:
		return w, fmt.Errorf("%w: %q", apperrors.ErrReconcileUnsupported, step.Action)
	}
	return w, nil
}
