package worker

import (
	"context"
	"errors"

	"classroom-market/internal/queue"
	"classroom-market/internal/service"
	apperrors "classroom-market/pkg/app_errors"
	"classroom-market/pkg/logger"

	"go.uber.org/zap"
)

type ReconcileWorker interface {
	// Start subscribes to the queue and processes tasks until ctx is done.
	Start(ctx context.Context) error
}

type ReconcileWorkerImpl struct {
	service service.PurchaseService
	queue   queue.ReconcileQueue
	log     *zap.Logger
}

func NewReconcileWorker(service service.PurchaseService, queue queue.ReconcileQueue) ReconcileWorker {
	return &ReconcileWorkerImpl{
		service: service,
		queue:   queue,
		log:     logger.WithComponent("worker"),
	}
}

func (w *ReconcileWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *ReconcileWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	task := msg.Data
	err := w.service.Reconcile(ctx, task)
	switch {
	case err == nil:
		msg.Ack()
	case errors.Is(err, apperrors.ErrReconcileUnsupported):
		w.log.Error("dropping reconcile task", zap.String("task_id", task.ID), zap.Error(err))
		msg.Nack(false)
	default:
		w.log.Warn("reconcile task failed, will retry", zap.String("task_id", task.ID), zap.Error(err))
		msg.Nack(true)
	}
}
