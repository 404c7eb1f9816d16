// Package queue decouples notification delivery from the request path.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshbasket/grocery-system/internal/api/metrics"
	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	defaultTimeout = 15 * time.Second
)

// Dispatcher fans notifications out to a fixed worker pool. Delivery is
// best-effort: Enqueue never blocks the producer, and a failed send is logged
// and counted, never reported back. Producers enqueue only after their own
// durable write succeeded, so a lost email never implies a lost order.
type Dispatcher struct {
	jobs     chan ports.Notification
	notifier ports.Notifier
	workers  int
	timeout  time.Duration
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers and a
// per-send timeout. Non-positive arguments fall back to defaults.
func NewDispatcher(numWorkers int, timeout time.Duration, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		jobs:     make(chan ports.Notification, channelBuffer),
		notifier: notifier,
		workers:  numWorkers,
		timeout:  timeout,
		log:      log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a notification to the pool. When the buffer is full the
// notification is dropped with a warning rather than stalling the caller.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	select {
	case d.jobs <- n:
		metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", n.To).Str("subject", n.Subject).Msg("notification queue full, dropping")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
			d.deliver(ctx, id, n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, n ports.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.notifier.Notify(sendCtx, n)
	switch {
	case err == nil:
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		d.log.Debug().Str("to", n.To).Str("subject", n.Subject).Msg("notification sent")
	case errors.Is(err, domain.ErrNotifierDisabled):
		metrics.NotificationsTotal.WithLabelValues("disabled").Inc()
		d.log.Debug().Str("to", n.To).Msg("notifications disabled, skipping")
	default:
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		d.log.Warn().Err(err).
			Str("to", n.To).
			Str("subject", n.Subject).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
	}
}
