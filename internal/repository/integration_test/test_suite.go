package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// Базовые данные для тестов репозиториев: по одному пользователю на роль,
// ресторан владельца 1 и две позиции меню.
const SeedAccounts = `
	INSERT INTO users (id, email, name, role) VALUES
		(1, 'customer@test.local', 'Customer', 'customer'),
		(2, 'owner@test.local', 'Owner', 'owner'),
		(3, 'partner@test.local', 'Partner', 'partner'),
		(4, 'admin@test.local', 'Admin', 'admin'),
		(5, 'partner2@test.local', 'Partner Two', 'partner');

	INSERT INTO customers (id, user_id, address) VALUES (1, 1, 'Thamel, Kathmandu');
	INSERT INTO owners (id, user_id, phone) VALUES (1, 2, '9800000002');
	INSERT INTO partners (id, user_id, phone, status, created_at, updated_at) VALUES
		(1, 3, '9800000003', 'available', '2025-01-15 10:00:00+00', '2025-01-15 10:00:00+00'),
		(2, 5, '9800000005', 'offline', '2025-01-15 10:00:00+00', '2025-01-15 10:00:00+00');

	INSERT INTO restaurants (id, owner_id, name, location, status) VALUES
		(1, 1, 'Momo House', 'Patan Durbar Square', 'open'),
		(2, 1, 'Closed Kitchen', 'Bhaktapur', 'closed');

	INSERT INTO food_items (id, restaurant_id, name, price, is_available) VALUES
		(1, 1, 'Chicken momo', 250, TRUE),
		(2, 1, 'Thukpa', 180, TRUE),
		(3, 1, 'Sel roti', 90, FALSE),
		(4, 2, 'Dal bhat', 300, TRUE);

	SELECT setval('users_id_seq', 100);
	SELECT setval('customers_id_seq', 100);
	SELECT setval('owners_id_seq', 100);
	SELECT setval('partners_id_seq', 100);
	SELECT setval('restaurants_id_seq', 100);
	SELECT setval('food_items_id_seq', 100);
`

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg, err := config.LoadDatabase()
		if err != nil {
			log.Fatalf("failed to load database config: %v", err)
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("", "integration_test")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, SeedAccounts+setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_events, order_items, orders, food_items, restaurants,
			partners, owners, customers, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
