package outbox_relay

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
	"marketplace/internal/service/events"
	"marketplace/pkg/logger"
)

type Service interface {
	PublishPending(ctx context.Context) (events.RelayResult, error)
	CountPending(ctx context.Context) (int64, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	result, err := o.service.PublishPending(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.OutboxEventsTotal.WithLabelValues("published").Add(float64(result.Published))
	metrics.OutboxEventsTotal.WithLabelValues("failed").Add(float64(result.Failed))

	if result.Published > 0 || result.Failed > 0 {
		o.log.With(
			logger.NewField("published", result.Published),
			logger.NewField("failed", result.Failed),
		).Info("outbox relay")
	}

	pending, err := o.service.CountPending(ctxWithTimeout)
	if err != nil {
		return err
	}
	metrics.OutboxPendingEvents.Set(float64(pending))

	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
