//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_status_patch "marketplace/internal/handlers/rest/order_status_patch"
	orders_available_get "marketplace/internal/handlers/rest/orders_available_get"
	orders_get "marketplace/internal/handlers/rest/orders_get"
	orders_post "marketplace/internal/handlers/rest/orders_post"
	partner_status_patch "marketplace/internal/handlers/rest/partner_status_patch"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/handlers/tasks/pool_gauge"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_handle"
	"marketplace/internal/pkg/kafka"
	"marketplace/internal/pkg/middlewares/auth"

	accountRepo "marketplace/internal/repository/account"
	catalogRepo "marketplace/internal/repository/catalog"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	partnerRepo "marketplace/internal/repository/partner"
	eventsService "marketplace/internal/service/events"
	orderService "marketplace/internal/service/order"
	partnerService "marketplace/internal/service/partner"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type (
	OutboxRelayInterval time.Duration
	PoolGaugeInterval   time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServicePartner    ServicePartner
	ActorResolver     auth.ActorResolver
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	orders_available_get.Service
	order_get.Service
	order_status_patch.Service
}

type ServicePartner interface {
	partner_status_patch.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOutboxRelayInterval,
		providePoolGaugeInterval,

		provideAccountRepository,
		provideCatalogRepository,
		provideOrderRepository,
		providePartnerRepository,
		provideOutboxRepository,

		provideStatusHandlerFactory,
		providePartnerService,
		provideOrderService,
		provideRelay,

		provideOutboxRelayTask,
		providePoolGaugeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServicePartner), new(*partnerService.Service)),
		wire.Bind(new(auth.ActorResolver), new(*accountRepo.Repository)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.PartnerDirectory), new(*partnerService.Service)),
		wire.Bind(new(orderService.EventWriter), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(partnerService.Repository), new(*partnerRepo.Repository)),
		wire.Bind(new(partnerService.OrderReader), new(*orderRepo.Repository)),
		wire.Bind(new(partnerService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(eventsService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(eventsService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(eventsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*eventsService.Relay)),
		wire.Bind(new(pool_gauge.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PartnerService *partnerService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		providePartnerRepository,

		provideStatusHandlerFactory,
		providePartnerService,

		wire.Bind(new(partnerService.Repository), new(*partnerRepo.Repository)),
		wire.Bind(new(partnerService.OrderReader), new(*orderRepo.Repository)),
		wire.Bind(new(partnerService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideStatusHandlerFactory(repository partnerService.Repository) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(repository)
}

func providePartnerService(
	repository partnerService.Repository,
	orders partnerService.OrderReader,
	handlerFactory partnerService.HandlerFactory,
) *partnerService.Service {
	return partnerService.New(repository, orders, handlerFactory)
}

func provideOrderService(
	repository orderService.Repository,
	catalog orderService.Catalog,
	partners orderService.PartnerDirectory,
	events orderService.EventWriter,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, catalog, partners, events, txManager)
}

func provideRelay(
	repository eventsService.Repository,
	publisher eventsService.Publisher,
	txManager eventsService.TxManager,
	cfg *config.Config,
) (*eventsService.Relay, error) {
	return eventsService.New(
		repository,
		publisher,
		txManager,
		cfg.Kafka.Topic,
		cfg.Tasks.OutboxBatchSize,
		cfg.Tasks.OutboxMaxAttempts,
	)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func providePoolGaugeInterval(cfg *config.Config) PoolGaugeInterval {
	return PoolGaugeInterval(cfg.Tasks.PoolGaugeInterval)
}

func provideOutboxRelayTask(
	log logger.Logger,
	relay outbox_relay.Service,
	interval OutboxRelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, relay, time.Duration(interval))
}

func providePoolGaugeTask(
	service pool_gauge.Service,
	interval PoolGaugeInterval,
) *pool_gauge.PoolGauge {
	return pool_gauge.NewPoolGauge(service, time.Duration(interval))
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	poolGaugeTask *pool_gauge.PoolGauge,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		poolGaugeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
