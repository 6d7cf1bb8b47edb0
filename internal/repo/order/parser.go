package order_repo

import (
	"errors"

	"paygate/internal/domain/order"

	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "status", "total", "currency", "stock_reduced",
	"trans_id", "trans_date", "authorization_amount", "capture_total",
	"charge_captured", "capture_trans_id", "auth_can_be_captured",
	"paid_at", "created_at", "updated_at",
}

func parseOrderRow(row pgx.Row) (order.Order, error) {
	var m orderRow

	err := row.Scan(&m.ID,
		&m.Status,
		&m.Total,
		&m.Currency,
		&m.StockReduced,
		&m.TransID,
		&m.TransDate,
		&m.AuthorizationAmount,
		&m.CaptureTotal,
		&m.ChargeCaptured,
		&m.CaptureTransID,
		&m.AuthCanBeCaptured,
		&m.PaidAt,
		&m.CreatedAt,
		&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}

	return m.toDomain()
}
