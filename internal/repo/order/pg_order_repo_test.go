package order_repo

import (
	"context"
	"testing"
	"time"

	"paygate/internal/domain/order"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetOrder(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should scan a full order row", func(t *testing.T) {
		// given
		now := time.Now()
		transDate := now.Add(-time.Hour)
		transID := "AUTH-1"

		rows := mock.NewRows(orderColumns).
			AddRow("ORDER-1", "on-hold", 100.0, "USD", true,
				&transID, &transDate, 100.0, 40.0,
				"partial", (*string)(nil), true,
				(*time.Time)(nil), now, now)

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1`).
			WithArgs("ORDER-1").
			WillReturnRows(rows)

		// when
		result, err := repo.GetOrder(ctx, "ORDER-1")

		// then
		require.NoError(t, err)
		assert.Equal(t, order.StatusOnHold, result.Status)
		assert.Equal(t, "AUTH-1", result.Payment.TransID)
		assert.Equal(t, 40.0, result.Payment.CaptureTotal)
		assert.Equal(t, order.CapturedPartial, result.Payment.ChargeCaptured)
		assert.True(t, result.StockReduced)
		assert.Nil(t, result.PaidAt)
	})

	t.Run("should map missing row to ErrNotFound", func(t *testing.T) {
		// given
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1`).
			WithArgs("ORDER-404").
			WillReturnRows(mock.NewRows(orderColumns))

		// when
		_, err := repo.GetOrder(ctx, "ORDER-404")

		// then
		assert.ErrorIs(t, err, order.ErrNotFound)
	})
}

func TestAddNote(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO order_notes \(order_id,note,created_at\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs("ORDER-1", "40.00 USD captured", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AddNote(ctx, "ORDER-1", "40.00 USD captured")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should update status only when note is empty", func(t *testing.T) {
		// given
		mock.ExpectExec(`UPDATE orders SET status = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs("on-hold", pgxmock.AnyArg(), "ORDER-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		// when
		err := repo.UpdateStatus(ctx, "ORDER-1", order.StatusOnHold, "")

		// then
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should append note alongside the transition", func(t *testing.T) {
		// given
		mock.ExpectExec(`UPDATE orders SET status = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs("failed", pgxmock.AnyArg(), "ORDER-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO order_notes`).
			WithArgs("ORDER-1", "Transaction Failed (2): declined", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		// when
		err := repo.UpdateStatus(ctx, "ORDER-1", order.StatusFailed, "Transaction Failed (2): declined")

		// then
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReduceStock(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	// The guard keeps repeated calls idempotent: only rows where stock was
	// not yet reduced are touched.
	mock.ExpectExec(`UPDATE orders SET stock_reduced = \$1, updated_at = \$2 WHERE id = \$3 AND stock_reduced = \$4`).
		WithArgs(true, pgxmock.AnyArg(), "ORDER-1", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ReduceStock(ctx, "ORDER-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePayment(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE orders SET status = \$1, paid_at = \$2, updated_at = \$3 WHERE id = \$4`).
		WithArgs("processing", pgxmock.AnyArg(), pgxmock.AnyArg(), "ORDER-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.CompletePayment(ctx, "ORDER-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCapture(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE orders SET capture_total = \$1, charge_captured = \$2, capture_trans_id = \$3, updated_at = \$4 WHERE id = \$5`).
		WithArgs(100.0, "yes", "CAP-2", pgxmock.AnyArg(), "ORDER-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateCapture(ctx, "ORDER-1", 100.0, order.CapturedYes, "CAP-2")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPaymentMetadata(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	meta := order.PaymentMetadata{
		TransID:             "AUTH-1",
		TransDate:           time.Now(),
		AuthorizationAmount: 100,
		ChargeCaptured:      order.CapturedNo,
		AuthCanBeCaptured:   true,
	}

	mock.ExpectExec(`UPDATE orders SET trans_id = \$1, trans_date = \$2, authorization_amount = \$3, capture_total = \$4, charge_captured = \$5, capture_trans_id = \$6, auth_can_be_captured = \$7, updated_at = \$8 WHERE id = \$9`).
		WithArgs("AUTH-1", meta.TransDate, 100.0, 0.0, "no", "", true, pgxmock.AnyArg(), "ORDER-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetPaymentMetadata(ctx, "ORDER-1", meta)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
