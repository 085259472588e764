package rabbit

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
)

const heartbeat = 10 * time.Second

// RabbitMQ holds one connection and one channel. A closed connection stays
// closed: callers fail instead of reconnecting.
type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel

	mu       sync.Mutex
	isClosed bool

	log logger.Logger
}

// New creates rabbitMQ client
func New(ctx context.Context, dsn string, log logger.Logger) (*RabbitMQ, error) {
	conn, err := amqp.DialConfig(dsn, amqp.Config{Heartbeat: heartbeat})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	r := &RabbitMQ{
		Conn:    conn,
		Channel: channel,
		log:     log,
	}

	go r.monitor(conn.NotifyClose(make(chan *amqp.Error, 1)), channel.NotifyClose(make(chan *amqp.Error, 1)))

	log.Info(wrap.WithAction(ctx, types.ActionRabbitMQConnected), "connected to rabbitMQ")
	return r, nil
}

// monitor marks the client closed as soon as the connection or the channel goes away.
func (r *RabbitMQ) monitor(connClosed, chClosed <-chan *amqp.Error) {
	var (
		closeErr *amqp.Error
		what     string
	)
	select {
	case closeErr = <-connClosed:
		what = "connection"
	case closeErr = <-chClosed:
		what = "channel"
	}

	r.mu.Lock()
	r.isClosed = true
	r.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), types.ActionRabbitConnectionClosed)
	if closeErr != nil {
		r.log.Error(ctx, "RabbitMQ "+what+" closed", closeErr)
		return
	}
	r.log.Debug(ctx, "RabbitMQ "+what+" closed gracefully")
}

// IsConnectionClosed checks if the connection is closed
func (r *RabbitMQ) IsConnectionClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isClosed || r.Conn == nil || r.Channel == nil {
		return true
	}
	return r.Conn.IsClosed() || r.Channel.IsClosed()
}

// Close closes the channel and then the connection, giving up when ctx is done.
func (r *RabbitMQ) Close(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, types.ActionRabbitConnectionClosing)

	r.mu.Lock()
	ch, conn := r.Channel, r.Conn
	r.Channel, r.Conn = nil, nil
	r.isClosed = true
	r.mu.Unlock()

	if ch != nil {
		r.log.Debug(ctx, "closing channel")
		if err := closeWithCtx(ctx, ch.Close); err != nil && ctx.Err() == nil {
			r.log.Error(ctx, "error closing channel", err)
		}
	}

	if conn == nil {
		return nil
	}
	r.log.Debug(ctx, "closing RabbitMQ connection")
	if err := closeWithCtx(ctx, conn.Close); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to close connection: %w", err)
	}

	r.log.Info(wrap.WithAction(ctx, types.ActionRabbitConnectionClosed), "rabbitMQ closed")
	return nil
}

func closeWithCtx(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
