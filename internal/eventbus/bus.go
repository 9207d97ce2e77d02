// Package eventbus is the in-process publish/subscribe broker for domain events.
//
// Publish fans an event out to every handler subscribed to its type, runs them
// concurrently and waits for all of them to settle. A failing or panicking
// handler is logged and counted; it never affects sibling handlers or the
// publisher. Delivery is best-effort and at-most-once per Publish call.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/observability"
)

var (
	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("eventbus: nil handler")
	// ErrHandlerNotComparable is returned for handlers that cannot be used as set keys.
	ErrHandlerNotComparable = errors.New("eventbus: handler type is not comparable")
)

// Handler consumes one event. Handlers must be comparable (typically pointers)
// so that subscriptions have set semantics.
type Handler interface {
	Name() string
	Handle(ctx context.Context, event events.Event) error
}

type funcHandler struct {
	name string
	fn   func(context.Context, events.Event) error
}

// HandlerFunc wraps fn in a pointer handler. Each call returns a distinct handler.
func HandlerFunc(name string, fn func(context.Context, events.Event) error) Handler {
	return &funcHandler{name: name, fn: fn}
}

func (h *funcHandler) Name() string { return h.name }

func (h *funcHandler) Handle(ctx context.Context, event events.Event) error {
	return h.fn(ctx, event)
}

// Bus routes events to subscribed handlers by event type.
type Bus struct {
	log      *slog.Logger
	metrics  busMetrics
	mu       sync.RWMutex
	topics   map[events.EventType]map[Handler]struct{}
	inflight sync.WaitGroup
}

// New constructs an empty bus.
func New(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{
		log:     log,
		metrics: newBusMetrics(),
		topics:  make(map[events.EventType]map[Handler]struct{}),
	}
}

// Subscribe registers handler for eventType. Subscribing the same handler twice is a no-op.
func (b *Bus) Subscribe(eventType events.EventType, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if !reflect.TypeOf(handler).Comparable() {
		return ErrHandlerNotComparable
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.topics[eventType]
	if !ok {
		handlers = make(map[Handler]struct{})
		b.topics[eventType] = handlers
	}
	handlers[handler] = struct{}{}
	return nil
}

// Unsubscribe removes handler from eventType. The topic is dropped with its last handler.
func (b *Bus) Unsubscribe(eventType events.EventType, handler Handler) {
	if handler == nil || !reflect.TypeOf(handler).Comparable() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.topics[eventType]
	if !ok {
		return
	}
	delete(handlers, handler)
	if len(handlers) == 0 {
		delete(b.topics, eventType)
	}
}

// HandlerCount returns the number of handlers subscribed to eventType.
func (b *Bus) HandlerCount(eventType events.EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[eventType])
}

// Topics returns the number of event types with at least one handler.
func (b *Bus) Topics() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics)
}

// Publish delivers event to every subscribed handler and waits for all of them.
func (b *Bus) Publish(ctx context.Context, event events.Event) {
	if event == nil {
		return
	}
	handlers := b.handlersFor(event.Type())
	if len(handlers) == 0 {
		return
	}

	var wg conc.WaitGroup
	for _, handler := range handlers {
		wg.Go(func() {
			b.dispatch(ctx, handler, event.Clone())
		})
	}
	wg.Wait()
}

// PublishAsync publishes in the background, detached from ctx cancellation.
func (b *Bus) PublishAsync(ctx context.Context, event events.Event) {
	if event == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		b.Publish(detached, event)
	}()
}

// Wait blocks until every PublishAsync call has settled.
func (b *Bus) Wait() {
	b.inflight.Wait()
}

func (b *Bus) handlersFor(eventType events.EventType) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subscribed := b.topics[eventType]
	handlers := make([]Handler, 0, len(subscribed))
	for handler := range subscribed {
		handlers = append(handlers, handler)
	}
	return handlers
}

func (b *Bus) dispatch(ctx context.Context, handler Handler, event events.Event) {
	eventType := string(event.Type())
	ctx, span := observability.StartHandlerSpan(ctx, eventType, handler.Name())
	defer span.End()

	var err error
	if recovered := panics.Try(func() { err = handler.Handle(ctx, event) }); recovered != nil {
		err = recovered.AsError()
	}
	if err != nil {
		span.RecordError(err)
		b.metrics.recordFailure(ctx, eventType, handler.Name())
		b.log.ErrorContext(ctx, "Event handler failed",
			"event_type", eventType,
			"handler", handler.Name(),
			"error", err,
		)
		return
	}
	b.metrics.recordSuccess(ctx, eventType, handler.Name())
}
