package queue

import (
	"context"
	"errors"
	"time"

	"classroom-market/internal/model"
)

// ErrQueueFull is returned by a memory queue whose buffer has no room left.
var ErrQueueFull = errors.New("reconcile queue full")

// Delivery hands one task to a consumer. Nack(true) redelivers Data as it
// is at the time of the call, so a consumer may narrow Data before nacking.
type Delivery struct {
	Data *model.ReconcileTask
	Ack  func()
	Nack func(requeue bool)
}

type ReconcileQueue interface {
	Publish(ctx context.Context, task *model.ReconcileTask) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryReconcileQueue is a buffered channel standing in for a broker.
// Pending tasks are lost when the process exits.
type MemoryReconcileQueue struct {
	ch         chan *model.ReconcileTask
	retryDelay time.Duration
}

// NewMemoryReconcileQueue returns a queue that redelivers a requeued task
// after retryDelay.
func NewMemoryReconcileQueue(bufferSize int, retryDelay time.Duration) ReconcileQueue {
	return &MemoryReconcileQueue{
		ch:         make(chan *model.ReconcileTask, bufferSize),
		retryDelay: retryDelay,
	}
}

func (q *MemoryReconcileQueue) Publish(ctx context.Context, task *model.ReconcileTask) error {
	select {
	case q.ch <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *MemoryReconcileQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case task, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: task,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						go func() {
							select {
							case <-time.After(q.retryDelay):
							case <-ctx.Done():
								return
							}
							select {
							case q.ch <- task:
							case <-ctx.Done():
							}
						}()
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
