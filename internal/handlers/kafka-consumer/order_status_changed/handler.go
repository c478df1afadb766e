package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/metrics"
	orderservice "marketplace/internal/service/order"
	partnerservice "marketplace/internal/service/partner"
	"marketplace/pkg/logger"
)

type Handler struct {
	partnerService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, partnerService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", entities.EventOrderStatusChanged),
	)

	return &Handler{
		partnerService:           partnerService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт, выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// сессия закрыта (rebalance или остановка consumer group)
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderStatusChanged
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		metrics.OrderEventsConsumedTotal.WithLabelValues("unknown", "bad_message").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.EventID.String()),
		logger.NewField("order", event.OrderID),
		logger.NewField("status", string(event.Status)),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	order, err := h.partnerService.ProcessOrderStatusChange(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, partnerservice.ErrStoreUnavailable) || errors.Is(err, orderservice.ErrStoreUnavailable):
			// без MarkMessage: сообщение перечитается после ребаланса
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.status.changed handler store unavailable, message will be reprocessed")
			metrics.OrderEventsConsumedTotal.WithLabelValues(string(event.Status), "unavailable").Inc()
			return true

		case errors.Is(err, partnerservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler event without order id or status")

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler order not found")

		case errors.Is(err, partnerservice.ErrPartnerNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler partner not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to process order")
		}
		metrics.OrderEventsConsumedTotal.WithLabelValues(string(event.Status), "failed").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", string(event.Status)),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: processed")
	metrics.OrderEventsConsumedTotal.WithLabelValues(string(event.Status), "processed").Inc()

	sess.MarkMessage(message, "")
	return false
}
