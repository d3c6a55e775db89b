// Package events implements the EventPublisher domain service as an
// in-process asynchronous dispatcher. Subscribers run on a worker goroutine
// so publishing never blocks or fails the request path.
package events

import (
	"context"
	"log/slog"
	"sync"

	"pressroom/internal/domain/lifecycle"
	"pressroom/internal/domain/service"
)

// Subscriber handles one delivered event. Errors are logged by the
// dispatcher and never reach the publisher.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, event *service.Event) error
}

type dispatcher struct {
	logger      *slog.Logger
	subscribers []Subscriber

	queue chan *service.Event
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

const queueSize = 256

// NewDispatcher starts the delivery worker and returns a publisher that
// fans incoming events out to every subscriber.
func NewDispatcher(logger *slog.Logger, subscribers ...Subscriber) service.EventPublisher {
	d := &dispatcher{
		logger:      logger,
		subscribers: subscribers,
		queue:       make(chan *service.Event, queueSize),
	}

	d.wg.Add(1)
	go d.deliver()

	return d
}

// Publish enqueues the event for asynchronous delivery. When the queue is
// full or the dispatcher is closed the event is dropped with a warning
// instead of blocking the caller.
func (d *dispatcher) Publish(ctx context.Context, event *service.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("Event dropped, dispatcher closed",
			slog.String("type", string(event.Type)),
		)

		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("Event dropped, queue full",
			slog.String("type", string(event.Type)),
		)
	}
}

// Close stops accepting events and waits for in-flight deliveries.
func (d *dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()

	return nil
}

func (d *dispatcher) deliver() {
	defer d.wg.Done()

	for event := range d.queue {
		for _, sub := range d.subscribers {
			d.dispatchOne(sub, event)
		}
	}
}

func (d *dispatcher) dispatchOne(sub Subscriber, event *service.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Event subscriber panicked",
				slog.String("subscriber", sub.Name()),
				slog.String("type", string(event.Type)),
				slog.Any("panic", r),
			)
		}
	}()

	if err := sub.Handle(ctx, event); err != nil {
		d.logger.Error("Event subscriber failed",
			slog.String("subscriber", sub.Name()),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
