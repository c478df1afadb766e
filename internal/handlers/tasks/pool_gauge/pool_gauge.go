package pool_gauge

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
)

type Service interface {
	CountAvailable(ctx context.Context) (int64, error)
}

type PoolGauge struct {
	service  Service
	interval time.Duration
	set      func(float64)
}

func NewPoolGauge(service Service, interval time.Duration) *PoolGauge {
	return &PoolGauge{
		service:  service,
		interval: interval,
		set:      metrics.AssignmentPoolOrders.Set,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (p *PoolGauge) TTL() time.Duration {
	return p.interval
}

// Do обновляет размер пула назначения.
func (p *PoolGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	count, err := p.service.CountAvailable(ctxWithTimeout)
	if err != nil {
		return err
	}

	p.set(float64(count))
	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (p *PoolGauge) Info() string {
	return "assignment pool gauge"
}
