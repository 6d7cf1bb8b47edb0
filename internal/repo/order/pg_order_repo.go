// Package order_repo is the Postgres-backed order store.
package order_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paygate/internal/domain/order"
	"paygate/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(tx order.TxStore) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrder(ctx context.Context, id string) (order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build select query: %w", err)
	}

	return parseOrderRow(r.db.QueryRow(ctx, query, args...))
}

func (r *repo) AddNote(ctx context.Context, orderID, note string) error {
	query, args, err := r.builder.Insert("order_notes").
		Columns("order_id", "note", "created_at").
		Values(orderID, note, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert note query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("add order note: %w", err)
	}
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, orderID string, status order.Status, note string) error {
	query, args, err := r.builder.Update("orders").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if note != "" {
		return r.AddNote(ctx, orderID, note)
	}
	return nil
}

func (r *repo) SetPaymentMetadata(ctx context.Context, orderID string, meta order.PaymentMetadata) error {
	query, args, err := r.builder.Update("orders").
		Set("trans_id", meta.TransID).
		Set("trans_date", meta.TransDate).
		Set("authorization_amount", meta.AuthorizationAmount).
		Set("capture_total", meta.CaptureTotal).
		Set("charge_captured", string(meta.ChargeCaptured)).
		Set("capture_trans_id", meta.CaptureTransID).
		Set("auth_can_be_captured", meta.AuthCanBeCaptured).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update metadata query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("set payment metadata: %w", err)
	}
	return nil
}

// ReduceStock flips the stock flag exactly once; the guard in the WHERE
// clause makes repeated calls no-ops.
func (r *repo) ReduceStock(ctx context.Context, orderID string) error {
	query, args, err := r.builder.Update("orders").
		Set("stock_reduced", true).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID, "stock_reduced": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reduce stock query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("reduce stock: %w", err)
	}
	return nil
}

func (r *repo) CompletePayment(ctx context.Context, orderID string) error {
	now := time.Now().UTC()
	query, args, err := r.builder.Update("orders").
		Set("status", string(order.StatusProcessing)).
		Set("paid_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build complete payment query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("complete payment: %w", err)
	}
	return nil
}

func (r *repo) UpdateCapture(ctx context.Context, orderID string, captureTotal float64, captured order.ChargeCaptured, captureTransID string) error {
	query, args, err := r.builder.Update("orders").
		Set("capture_total", captureTotal).
		Set("charge_captured", string(captured)).
		Set("capture_trans_id", captureTransID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update capture query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update capture: %w", err)
	}
	return nil
}

// CreateOrder inserts a new order. Used by the REST layer and test seeding;
// the processing paths only ever mutate existing orders.
func (r *repo) CreateOrder(ctx context.Context, ord order.Order) error {
	now := time.Now().UTC()
	query, args, err := r.builder.Insert("orders").
		Columns("id", "status", "total", "currency", "stock_reduced",
			"authorization_amount", "capture_total", "charge_captured",
			"auth_can_be_captured", "created_at", "updated_at").
		Values(ord.ID, string(ord.Status), ord.Total, ord.Currency, ord.StockReduced,
			ord.Payment.AuthorizationAmount, ord.Payment.CaptureTotal, string(chargeCapturedOrDefault(ord.Payment.ChargeCaptured)),
			ord.Payment.AuthCanBeCaptured, now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "orders_pkey") {
			return order.ErrAlreadyExists
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func chargeCapturedOrDefault(c order.ChargeCaptured) order.ChargeCaptured {
	if c == "" {
		return order.CapturedNo
	}
	return c
}
