package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "customer_id", "restaurant_id", "partner_id", "status",
	"total", "delivery_fee", "address", "phone", "payment_method",
	"estimated_delivery_time", "actual_delivery_time", "cancel_reason",
	"created_at", "updated_at",
}

type scanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create сохраняет заказ и его позиции. Позиции пишутся одним INSERT,
// атомарность с заказом обеспечивает транзакция вызывающего.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query, args, err := qb.
		Insert("orders").
		Columns(
			"customer_id", "restaurant_id", "status", "total", "delivery_fee",
			"address", "phone", "payment_method", "estimated_delivery_time",
			"created_at", "updated_at",
		).
		Values(
			orderModel.CustomerID,
			orderModel.RestaurantID,
			orderModel.Status,
			orderModel.Total,
			orderModel.DeliveryFee,
			orderModel.Address,
			orderModel.Phone,
			orderModel.PaymentMethod,
			orderModel.EstimatedDeliveryTime,
			orderModel.CreatedAt,
			orderModel.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	created, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrRestaurantNotFound
		}
		return nil, mapError("create", err)
	}

	items, err := r.createItems(ctx, created.ID, orderEntity.Items)
	if err != nil {
		return nil, err
	}

	return ToDomain(created, items), nil
}

func (r *Repository) createItems(ctx context.Context, orderID int64, items []entities.OrderItem) ([]OrderItemDB, error) {
	if len(items) == 0 {
		return nil, nil
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "food_item_id", "quantity", "price")
	for _, item := range items {
		builder = builder.Values(orderID, item.FoodItemID, item.Quantity, item.Price)
	}

	query, args, err := builder.
		Suffix("RETURNING id, order_id, food_item_id, quantity, price").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("create items", err)
	}
	defer rows.Close()

	result := make([]OrderItemDB, 0, len(items))
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID, &item.Quantity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("create items", err)
	}
	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, mapError("getbyid", err)
	}

	items, err := r.getItems(ctx, []int64{orderModel.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(orderModel, items[orderModel.ID]), nil
}

// List заказы под фильтр, новые первыми.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	// опциональные фильтры
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.RestaurantID != nil {
		builder = builder.Where(sq.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.PartnerID != nil {
		builder = builder.Where(sq.Eq{"partner_id": *filter.PartnerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("list", err)
	}

	items, err := r.getItems(ctx, orderIDs(orderModels))
	if err != nil {
		return nil, err
	}

	return ToDomainList(orderModels, items), nil
}

// GetAvailable пул назначения: готовые заказы без партнёра вместе с
// названием и адресом ресторана, недавно обновлённые первыми.
func (r *Repository) GetAvailable(ctx context.Context) ([]entities.AvailableOrder, error) {
	query, args, err := qb.
		Select(prefixed("o")...).
		Columns("r.name", "r.location").
		From("orders o").
		Join("restaurants r ON r.id = o.restaurant_id").
		Where(sq.Eq{"o.status": entities.OrderReady.String(), "o.partner_id": nil}).
		OrderBy("o.updated_at DESC", "o.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get available error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("get available", err)
	}
	defer rows.Close()

	orderModels := make([]AvailableOrderDB, 0, 8)
	for rows.Next() {
		var orderModel AvailableOrderDB
		dest := append(orderDest(&orderModel.OrderDB), &orderModel.RestaurantName, &orderModel.RestaurantLocation)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("unexpected order repository get available error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("get available", err)
	}

	ids := make([]int64, len(orderModels))
	for i := range orderModels {
		ids[i] = orderModels[i].ID
	}
	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToAvailableDomainList(orderModels, items), nil
}

func (r *Repository) CountAvailable(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE status = 'ready' AND partner_id IS NULL
	`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, mapError("count available", err)
	}
	return count, nil
}

// ApplyTransition условная запись перехода: строка меняется, только если
// статус и партнёр всё ещё те, что видел планировщик. Ноль строк или
// конфликт сериализации означает проигранную гонку.
func (r *Repository) ApplyTransition(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", transition.ToStatus.String()).
		Set("partner_id", transition.PartnerID).
		Set("updated_at", transition.UpdatedAt)

	// поля только для отдельных статусов
	if transition.ActualDeliveryTime != nil {
		builder = builder.Set("actual_delivery_time", *transition.ActualDeliveryTime)
	}
	if transition.CancelReason != nil {
		builder = builder.Set("cancel_reason", *transition.CancelReason)
	}

	builder = builder.Where(sq.Eq{
		"id":     transition.OrderID,
		"status": transition.FromStatus.String(),
	})
	if transition.ExpectPartnerID == nil {
		builder = builder.Where(sq.Eq{"partner_id": nil})
	} else {
		builder = builder.Where(sq.Eq{"partner_id": *transition.ExpectPartnerID})
	}

	query, args, err := builder.
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository apply transition error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d changed since read: %w", transition.OrderID, order.ErrAssignmentConflict)
		}
		return nil, mapError("apply transition", err)
	}

	items, err := r.getItems(ctx, []int64{orderModel.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(orderModel, items[orderModel.ID]), nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItemDB, error) {
	result := make(map[int64][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, order_id, food_item_id, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, mapError("get items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID, &item.Quantity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("get items", err)
	}
	return result, nil
}

func scanOrder(row scanner) (*OrderDB, error) {
	var orderModel OrderDB
	if err := row.Scan(orderDest(&orderModel)...); err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func orderDest(o *OrderDB) []any {
	return []any{
		&o.ID,
		&o.CustomerID,
		&o.RestaurantID,
		&o.PartnerID,
		&o.Status,
		&o.Total,
		&o.DeliveryFee,
		&o.Address,
		&o.Phone,
		&o.PaymentMethod,
		&o.EstimatedDeliveryTime,
		&o.ActualDeliveryTime,
		&o.CancelReason,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

func orderIDs(orders []OrderDB) []int64 {
	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	return ids
}

func prefixed(alias string) []string {
	columns := make([]string, len(orderColumns))
	for i, column := range orderColumns {
		columns[i] = alias + "." + column
	}
	return columns
}

func mapError(op string, err error) error {
	switch {
	case repository.IsConcurrentUpdate(err):
		return fmt.Errorf("order repository %s: %w", op, order.ErrAssignmentConflict)
	case repository.IsUnavailable(err):
		return fmt.Errorf("order repository %s: %w: %w", op, order.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
}
