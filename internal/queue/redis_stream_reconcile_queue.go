package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"classroom-market/internal/model"
	"classroom-market/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "reconcile:stream"
	ConsumerGroupName  = "reconcile-workers"
	ConsumerNamePrefix = "worker"

	taskField = "task"
)

// RedisStreamReconcileQueueConfig holds the claim and retry knobs. Zero
// fields fall back to the defaults.
type RedisStreamReconcileQueueConfig struct {
	ClaimMinIdleTime   time.Duration // idle time in the PEL before XAUTOCLAIM takes a message back
	MaxRetryCount      int           // deliveries after which a message is discarded as poison
	ReadGroupBlockTime time.Duration
}

func defaultRedisStreamConfig() RedisStreamReconcileQueueConfig {
	return RedisStreamReconcileQueueConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
}

type RedisStreamReconcileQueue struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamReconcileQueueConfig
	log          *zap.Logger
}

// NewRedisStreamReconcileQueue creates the consumer group if needed. An
// empty consumerID gets a random one; config may be nil.
func NewRedisStreamReconcileQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamReconcileQueueConfig) (*RedisStreamReconcileQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
	}
	q := &RedisStreamReconcileQueue{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
		log:          logger.WithComponent("mq"),
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamReconcileQueue) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamReconcileQueue) Publish(ctx context.Context, task *model.ReconcileTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal reconcile task: %w", err)
	}
	_, err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		ID:     "*",
		Values: map[string]interface{}{taskField: string(body)},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamReconcileQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		done := make(chan struct{})
		go func() {
			defer close(done)
			q.runAutoClaim(ctx, out)
		}()
		q.runReadLoop(ctx, out)
		<-done
	}()
	return out, nil
}

func (q *RedisStreamReconcileQueue) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

// readAndDeliver reads new messages only (">"). Messages already in this
// consumer's PEL come back through XAUTOCLAIM once they sit idle.
func (q *RedisStreamReconcileQueue) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		q.log.Error("XReadGroup failed", zap.Error(err))
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
		}
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			d := q.newDelivery(ctx, msg)
			if d == nil {
				continue
			}
			select {
			case out <- *d:
			case <-ctx.Done():
				return
			}
		}
	}
}

// shouldProcessMessage discards a reclaimed message that has already been
// delivered MaxRetryCount times.
func (q *RedisStreamReconcileQueue) shouldProcessMessage(ctx context.Context, messageID string) bool {
	n, err := q.getMessageRetryCount(ctx, messageID)
	if err != nil {
		q.log.Warn("getMessageRetryCount failed", zap.String("message_id", messageID), zap.Error(err))
		return true
	}
	if n >= q.cfg.MaxRetryCount {
		q.log.Error("discard poison reconcile task, manual reconciliation required",
			zap.String("message_id", messageID), zap.Int("retries", n), zap.Int("max_retries", q.cfg.MaxRetryCount))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
		return false
	}
	return true
}

func (q *RedisStreamReconcileQueue) getMessageRetryCount(ctx context.Context, messageID string) (int, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return int(pending[0].RetryCount), nil
}

func (q *RedisStreamReconcileQueue) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() != nil {
					return
				}
				q.log.Error("XAutoClaim failed", zap.Error(err))
				continue
			}
			if nextID != "" && nextID != "0-0" {
				startID = nextID
			} else {
				startID = "0-0"
			}

			for _, msg := range claimed {
				if !q.shouldProcessMessage(ctx, msg.ID) {
					continue
				}
				d := q.newDelivery(ctx, msg)
				if d == nil {
					continue
				}
				select {
				case out <- *d:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (q *RedisStreamReconcileQueue) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	body, ok := msg.Values[taskField].(string)
	if !ok {
		q.log.Warn("invalid message: missing task field", zap.String("message_id", msg.ID))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	var task model.ReconcileTask
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		q.log.Warn("unmarshal reconcile task failed", zap.String("message_id", msg.ID), zap.Error(err))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	msgID := msg.ID
	return &Delivery{
		Data: &task,
		Ack: func() {
			if err := q.client.XAck(context.Background(), q.streamKey, q.groupName, msgID).Err(); err != nil {
				q.log.Error("XAck failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue && q.replaceIfNarrowed(msgID, body, &task) {
				return
			}
			if requeue {
				// left in the PEL; XAUTOCLAIM picks it up after ClaimMinIdleTime
				q.log.Info("reconcile task nacked, will retry", zap.String("message_id", msgID), zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			if err := q.client.XAck(context.Background(), q.streamKey, q.groupName, msgID).Err(); err != nil {
				q.log.Error("XAck discard failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
	}
}

// replaceIfNarrowed swaps a nacked message for a new entry carrying task
// when the consumer changed it, so the retry replays only what is still
// outstanding. It reports false when task is unchanged or the swap failed,
// leaving the original message in the PEL.
func (q *RedisStreamReconcileQueue) replaceIfNarrowed(msgID, original string, task *model.ReconcileTask) bool {
	body, err := json.Marshal(task)
	if err != nil || string(body) == original {
		return false
	}
	ctx := context.Background()
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: q.streamKey,
			ID:     "*",
			Values: map[string]interface{}{taskField: string(body)},
		})
		pipe.XAck(ctx, q.streamKey, q.groupName, msgID)
		return nil
	})
	if err != nil {
		q.log.Error("replace narrowed reconcile task failed", zap.String("message_id", msgID), zap.Error(err))
		return false
	}
	q.log.Info("reconcile task requeued with remaining steps",
		zap.String("message_id", msgID), zap.String("task_id", task.ID), zap.Int("steps", len(task.Steps)))
	return true
}
