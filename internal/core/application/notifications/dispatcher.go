package notifications

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fulfillment/internal/core/domain/model/notification"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256

	// enqueueTimeout bounds how long Dispatch waits for room in a full queue.
	enqueueTimeout = 100 * time.Millisecond
)

// Deliverer performs the actual delivery; *Fanout is the production implementation.
type Deliverer interface {
	Deliver(ctx context.Context, notice notification.Notice)
	DeliverDigest(ctx context.Context, digest notification.Digest)
}

type job struct {
	notice *notification.Notice
	digest *notification.Digest
}

// AsyncDispatcher queues notices for a fixed pool of workers so that a request
// returns as soon as its transaction has committed.
//
// When the queue is full Dispatch waits up to enqueueTimeout for a worker to free
// a slot, then drops the notice, logs it and counts it in Dropped.
// Workers deliver with a background context, detached from the request that
// produced the notice.
type AsyncDispatcher struct {
	deliverer Deliverer
	logger    *slog.Logger
	jobs      chan job
	wg        sync.WaitGroup

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

func NewAsyncDispatcher(deliverer Deliverer, workers, queueSize int, logger *slog.Logger) *AsyncDispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	d := &AsyncDispatcher{
		deliverer: deliverer,
		logger:    logger.With("component", "NotificationDispatcher"),
		jobs:      make(chan job, queueSize),
	}

	d.wg.Add(workers)
	for range workers {
		go d.work()
	}

	d.logger.Info("notification dispatcher started", "workers", workers, "queue_size", queueSize)
	return d
}

func (d *AsyncDispatcher) Dispatch(notices ...notification.Notice) {
	for _, n := range notices {
		d.enqueue(job{notice: &n}, "order_id", n.OrderID.String(), "recipients", len(n.RecipientIDs))
	}
}

func (d *AsyncDispatcher) DispatchDigests(digests ...notification.Digest) {
	for _, dg := range digests {
		d.enqueue(job{digest: &dg}, "recipient_id", dg.RecipientID.String(), "orders", len(dg.OrderIDs))
	}
}

// Dropped returns how many notices and digests were discarded since start.
func (d *AsyncDispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops accepting work and waits until the queue has been drained or ctx is done.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stopped before draining the queue", "pending", len(d.jobs))
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) enqueue(j job, attrs ...any) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop("dispatcher is closed", attrs...)
		return
	}

	select {
	case d.jobs <- j:
		return
	default:
	}

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case d.jobs <- j:
	case <-timer.C:
		d.drop("queue is full", attrs...)
	}
}

func (d *AsyncDispatcher) drop(reason string, attrs ...any) {
	total := d.dropped.Add(1)
	d.logger.Warn("notification dropped: "+reason, append(attrs, "dropped_total", total)...)
}

func (d *AsyncDispatcher) work() {
	defer d.wg.Done()

	for j := range d.jobs {
		ctx := context.Background()
		switch {
		case j.notice != nil:
			d.deliverer.Deliver(ctx, *j.notice)
		case j.digest != nil:
			d.deliverer.DeliverDigest(ctx, *j.digest)
		}
	}
}
