// Package analytics publishes transfer flow notifications for the host application.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-transfer/internal/domain"
)

// Routing keys of the published events.
const (
	KeyStepChanged   = "transfer.step.changed"
	KeyStatusChanged = "transfer.status.changed"
)

// DefaultExchange is the exchange used when none is configured.
const DefaultExchange = "transfer_flow_events"

const publishTimeout = 5 * time.Second

// Publisher sends an event body under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }

// StepChanged is published on every step change of a flow.
type StepChanged struct {
	SessionID string      `json:"session_id"`
	UserID    string      `json:"user_id"`
	Step      domain.Step `json:"step"`
	Timestamp time.Time   `json:"timestamp"`
}

// StatusChanged is published on every status change of a flow.
type StatusChanged struct {
	SessionID string                `json:"session_id"`
	UserID    string                `json:"user_id"`
	Status    domain.TransferStatus `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
}

// queueSize bounds the events waiting for the broker. Events beyond it are dropped.
const queueSize = 256

type event struct {
	routingKey string
	body       any
}

// Notifier publishes flow notifications from a single background worker so
// that a slow broker never holds up a flow. Events reach the publisher in the
// order they were produced.
type Notifier struct {
	pub Publisher
	log zerolog.Logger
	now func() time.Time

	mu     sync.Mutex
	closed bool
	queue  chan event
	done   chan struct{}
}

// NewNotifier returns a notifier publishing through pub.
func NewNotifier(pub Publisher, log zerolog.Logger) *Notifier {
	if pub == nil {
		pub = NopPublisher{}
	}

	n := &Notifier{
		pub:   pub,
		log:   log,
		now:   time.Now,
		queue: make(chan event, queueSize),
		done:  make(chan struct{}),
	}

	go n.run()

	return n
}

func (n *Notifier) run() {
	defer close(n.done)

	for ev := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)

		if err := n.pub.Publish(ctx, ev.routingKey, ev.body); err != nil {
			n.log.Warn().Err(err).Str("routing_key", ev.routingKey).Msg("publish analytics event")
		}

		cancel()
	}
}

// StepChanged publishes a StepChanged event.
func (n *Notifier) StepChanged(sessionID, userID string, step domain.Step) {
	n.publish(KeyStepChanged, StepChanged{
		SessionID: sessionID,
		UserID:    userID,
		Step:      step,
		Timestamp: n.now().UTC(),
	})
}

// StatusChanged publishes a StatusChanged event.
func (n *Notifier) StatusChanged(sessionID, userID string, status domain.TransferStatus) {
	n.publish(KeyStatusChanged, StatusChanged{
		SessionID: sessionID,
		UserID:    userID,
		Status:    status,
		Timestamp: n.now().UTC(),
	})
}

func (n *Notifier) publish(routingKey string, body any) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		n.log.Warn().Str("routing_key", routingKey).Msg("analytics event after close")
		return
	}

	select {
	case n.queue <- event{routingKey: routingKey, body: body}:
	default:
		n.log.Warn().Str("routing_key", routingKey).Msg("analytics queue is full, event dropped")
	}
}

// Close publishes the pending events and closes the publisher.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	<-n.done

	return n.pub.Close()
}
