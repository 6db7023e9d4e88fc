package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/resilience"
)

const workerQueueGroup = "chord-workers"

// EventBus carries chord recognition events over a NATS subject.
type EventBus struct {
	conn     *nats.Conn
	subject  string
	executor *resilience.Executor
}

type Options struct {
	ConnectTimeout time.Duration
	ReconnectWait  time.Duration
	MaxReconnects  int
	ClientName     string
	Executor       *resilience.Executor
}

func New(url, subject string, options Options) (*EventBus, error) {
	if options.ConnectTimeout <= 0 {
		options.ConnectTimeout = 2 * time.Second
	}
	if options.ReconnectWait <= 0 {
		options.ReconnectWait = 2 * time.Second
	}
	if options.MaxReconnects <= 0 {
		options.MaxReconnects = 60
	}
	if options.ClientName == "" {
		options.ClientName = "fretboard-chords"
	}

	conn, err := nats.Connect(
		url,
		nats.Name(options.ClientName),
		nats.Timeout(options.ConnectTimeout),
		nats.ReconnectWait(options.ReconnectWait),
		nats.MaxReconnects(options.MaxReconnects),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("nats_disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats_reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return newWithConn(conn, subject, options.Executor), nil
}

func newWithConn(conn *nats.Conn, subject string, executor *resilience.Executor) *EventBus {
	return &EventBus{
		conn:     conn,
		subject:  subject,
		executor: executor,
	}
}

func (b *EventBus) Close() {
	if b.conn != nil {
		b.conn.Close()
	}
}

// Connected reports whether the underlying connection is currently up.
func (b *EventBus) Connected() bool {
	return b.conn != nil && b.conn.IsConnected()
}

func (b *EventBus) PublishChordRecognized(ctx context.Context, event domain.ChordRecognizedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode chord event: %w", err)
	}

	publish := func(context.Context) error {
		if err := b.conn.Publish(b.subject, payload); err != nil {
			return fmt.Errorf("nats publish: %w", err)
		}
		return nil
	}

	if b.executor != nil {
		err = b.executor.Execute(ctx, "nats.publish", publish, classifyNATSError)
	} else {
		err = publish(ctx)
	}
	return wrapTemporaryIfNeeded(err)
}

// SubscribeChordRecognized blocks, delivering events to handler until ctx is
// cancelled, then drains the subscription.
func (b *EventBus) SubscribeChordRecognized(ctx context.Context, handler func(context.Context, domain.ChordRecognizedEvent) error) error {
	sub, err := b.conn.QueueSubscribe(b.subject, workerQueueGroup, func(msg *nats.Msg) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		if err := dispatch(ctx, msg.Data, handler); err != nil {
			slog.Error("chord_event_handler_failed", "subject", msg.Subject, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}
	if err := b.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	if err := b.conn.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("nats flush after drain: %w", err)
	}
	return nil
}

func dispatch(ctx context.Context, data []byte, handler func(context.Context, domain.ChordRecognizedEvent) error) error {
	var event domain.ChordRecognizedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domain.WrapError(domain.ErrInvalidInput, "decode chord event", err)
	}
	handlerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	return handler(handlerCtx, event)
}
