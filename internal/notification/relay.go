package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fkhayef/partymatch/internal/group"
)

const (
	relayRetryMin = 500 * time.Millisecond
	relayRetryMax = 30 * time.Second
)

// Relay fans push events out through redis so that every instance can reach
// the clients connected to it. Send only enqueues; Run does the I/O.
// While the relay is not subscribed, events go straight to the local hub.
type Relay struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
	queue   chan envelope
	logger  *slog.Logger

	online   atomic.Bool
	retryMin time.Duration
	retryMax time.Duration
}

type envelope struct {
	Recipient string          `json:"recipient"`
	Frame     json.RawMessage `json:"frame"`
}

// NewRelay creates a relay publishing on channel and delivering into hub
func NewRelay(rdb *redis.Client, channel string, hub *Hub, queueSize int, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		rdb:      rdb,
		channel:  channel,
		hub:      hub,
		queue:    make(chan envelope, queueSize),
		logger:   logger.With("module", "relay"),
		retryMin: relayRetryMin,
		retryMax: relayRetryMax,
	}
}

// Send queues evt for publication, or hands it to the local hub while the
// relay is unsubscribed. Frames are dropped when the queue is full.
func (r *Relay) Send(profileID string, evt group.Event) {
	frame, err := group.EncodeEvent(evt)
	if err != nil {
		r.logger.Error("Failed to encode event", "type", evt.Type(), "error", err)
		return
	}

	if !r.online.Load() {
		r.hub.Deliver(profileID, frame)
		return
	}

	select {
	case r.queue <- envelope{Recipient: profileID, Frame: frame}:
	default:
		r.logger.Warn("Relay queue full, dropping event", "type", evt.Type(), "profile", profileID)
	}
}

// Online reports whether the relay currently holds a subscription
func (r *Relay) Online() bool {
	return r.online.Load()
}

// Run publishes queued events and delivers subscribed ones until ctx ends.
// A failed or lost subscription is retried with exponential backoff.
func (r *Relay) Run(ctx context.Context) error {
	go r.publish(ctx)

	wait := r.retryMin
	for {
		err := r.subscribe(ctx, func() { wait = r.retryMin })
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.logger.Warn("Relay subscription lost, delivering locally", "channel", r.channel, "retry_in", wait, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = min(2*wait, r.retryMax)
	}
}

// subscribe holds one subscription until it fails or ctx ends
func (r *Relay) subscribe(ctx context.Context, onSubscribed func()) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	r.online.Store(true)
	defer r.online.Store(false)
	onSubscribed()
	r.logger.Info("Relay subscribed", "channel", r.channel)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("subscription %s closed", r.channel)
			}
			env, err := decodeEnvelope(msg.Payload)
			if err != nil {
				r.logger.Warn("Discarding malformed relay message", "error", err)
				continue
			}
			r.hub.Deliver(env.Recipient, env.Frame)
		}
	}
}

func (r *Relay) publish(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-r.queue:
			payload, err := json.Marshal(env)
			if err != nil {
				r.logger.Error("Failed to encode relay message", "error", err)
				continue
			}
			if err := r.rdb.Publish(ctx, r.channel, payload).Err(); err != nil {
				r.logger.Warn("Publish failed, delivering locally", "profile", env.Recipient, "error", err)
				r.hub.Deliver(env.Recipient, env.Frame)
			}
		}
	}
}

func decodeEnvelope(payload string) (envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return envelope{}, err
	}
	if env.Recipient == "" || len(env.Frame) == 0 {
		return envelope{}, fmt.Errorf("relay message missing recipient or frame")
	}
	return env, nil
}
