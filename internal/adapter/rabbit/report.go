package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/metrics"
	"github.com/Temutjin2k/ride-analytics/pkg/rabbit"
)

const (
	RoutingKeyQueryPrefix = "analytics.query."
	RoutingKeyDashboard   = "analytics.dashboard"

	HeaderChecksum = "dataset_checksum"
	HeaderQuery    = "query"
)

// channel is the part of *amqp.Channel the producer uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ReportProducer publishes report results to a topic exchange, one message per result.
type ReportProducer struct {
	ch       channel
	isClosed func() bool
	exchange string
	l        logger.Logger
}

func NewReportProducer(client *rabbit.RabbitMQ, exchange string, l logger.Logger) *ReportProducer {
	return &ReportProducer{
		ch:       client.Channel,
		isClosed: client.IsConnectionClosed,
		exchange: exchange,
		l:        l,
	}
}

// Publish sends every menu query and the dashboard. The first failure stops the run.
func (p *ReportProducer) Publish(ctx context.Context, report *models.Report) error {
	const op = "ReportProducer.Publish"

	if p.isClosed() {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, types.ErrPublisherClosed))
	}

	if err := p.ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // auto-delete
		false,      // internal
		false,      // no-wait
		nil,        // args
	); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to declare exchange %s: %w", op, p.exchange, err))
	}

	checksum := report.Dataset.Checksum
	for _, q := range report.Queries {
		if err := p.publish(ctx, RoutingKeyQueryPrefix+q.Query.String(), q.Query.String(), checksum, q); err != nil {
			return wrap.Error(wrap.WithQuery(ctx, q.Query.String()), fmt.Errorf("%s: %w", op, err))
		}
	}
	if err := p.publish(ctx, RoutingKeyDashboard, "", checksum, report.Dashboard); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	p.l.Info(wrap.WithAction(ctx, types.ActionReportDone), "report published",
		"exchange", p.exchange,
		"messages", len(report.Queries)+1,
		"checksum", checksum,
	)
	return nil
}

func (p *ReportProducer) publish(ctx context.Context, key, query, checksum string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	headers := amqp.Table{HeaderChecksum: checksum}
	if query != "" {
		headers[HeaderQuery] = query
	}

	err = p.ch.PublishWithContext(
		ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     uuid.NewString(),
			CorrelationId: wrap.GetRequestID(ctx),
			Timestamp:     time.Now().UTC(),
			Headers:       headers,
			Body:          body,
		},
	)
	metrics.RecordRabbitMQPublish(p.exchange, err)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return nil
}
