package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	c.declared = append(c.declared, name+":"+kind)
	if !durable {
		return errors.New("exchange must be durable")
	}
	return nil
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func newProducer(ch channel, closed bool) *ReportProducer {
	return &ReportProducer{
		ch:       ch,
		isClosed: func() bool { return closed },
		exchange: "analytics",
		l:        logger.New(io.Discard, "test", logger.LevelError),
	}
}

func sampleReport() *models.Report {
	return &models.Report{
		Dataset: models.DatasetInfo{Source: models.Source{Checksum: "deadbeef"}},
		Queries: []models.QueryResult{
			{Query: types.QueryCustomerCancellations, Kind: models.KindScalar, Scalar: &models.Scalar{Value: 3}},
			{Query: types.QueryTopCustomers, Kind: models.KindGroups},
		},
		Dashboard: models.Dashboard{KPIs: models.KPIs{TotalRides: 9}},
	}
}

func TestReportProducer_Publish(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, newProducer(ch, false).Publish(context.Background(), sampleReport()))

	assert.Equal(t, []string{"analytics:topic"}, ch.declared)
	require.Len(t, ch.published, 3)
	assert.Equal(t, "analytics.query.customer_cancellations", ch.published[0].key)
	assert.Equal(t, "analytics.query.top_customers", ch.published[1].key)
	assert.Equal(t, RoutingKeyDashboard, ch.published[2].key)

	first := ch.published[0].msg
	assert.Equal(t, "analytics", ch.published[0].exchange)
	assert.Equal(t, "deadbeef", first.Headers[HeaderChecksum])
	assert.Equal(t, "customer_cancellations", first.Headers[HeaderQuery])
	assert.NotEmpty(t, first.MessageId)
	assert.Equal(t, amqp.Persistent, first.DeliveryMode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(first.Body, &body))
	assert.Equal(t, map[string]any{"value": 3.0}, body["data"])

	_, ok := ch.published[2].msg.Headers[HeaderQuery]
	assert.False(t, ok)
}

func TestReportProducer_ClosedConnection(t *testing.T) {
	ch := &fakeChannel{}
	err := newProducer(ch, true).Publish(context.Background(), sampleReport())
	require.ErrorIs(t, err, types.ErrPublisherClosed)
	assert.Empty(t, ch.declared)
}

func TestReportProducer_PublishFailureStops(t *testing.T) {
	boom := errors.New("channel closed")
	ch := &fakeChannel{publishErr: boom}
	err := newProducer(ch, false).Publish(context.Background(), sampleReport())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, ch.published)
}
