//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	"testing"
	"time"

	"paygate/internal/domain/order"
	order_repo "paygate/internal/repo/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, repo *order_repo.PgOrderRepo, id string) order.Order {
	t.Helper()
	ord := order.Order{
		ID:       id,
		Status:   order.StatusPending,
		Total:    100,
		Currency: "USD",
	}
	require.NoError(t, repo.CreateOrder(context.Background(), ord))
	return ord
}

func TestCreateOrder_Duplicate(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")

	err := repo.CreateOrder(ctx, order.Order{ID: "order_001", Status: order.StatusPending, Total: 50, Currency: "USD"})
	assert.ErrorIs(t, err, order.ErrAlreadyExists)
}

func TestGetOrder_RoundTrip(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")

	transDate := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := order.PaymentMetadata{
		TransID:             "TXN-1",
		TransDate:           transDate,
		AuthorizationAmount: 100,
		AuthCanBeCaptured:   true,
	}
	require.NoError(t, repo.SetPaymentMetadata(ctx, "order_001", meta))

	got, err := repo.GetOrder(ctx, "order_001")
	require.NoError(t, err)
	assert.Equal(t, "TXN-1", got.Payment.TransID)
	assert.True(t, transDate.Equal(got.Payment.TransDate))
	assert.Equal(t, 100.0, got.Payment.AuthorizationAmount)
	assert.True(t, got.Payment.AuthCanBeCaptured)
	assert.Equal(t, order.CapturedNo, got.Payment.ChargeCaptured)

	_, err = repo.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestReduceStock_Idempotent(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")

	require.NoError(t, repo.ReduceStock(ctx, "order_001"))
	// second call is a no-op, not an error
	require.NoError(t, repo.ReduceStock(ctx, "order_001"))

	got, err := repo.GetOrder(ctx, "order_001")
	require.NoError(t, err)
	assert.True(t, got.StockReduced)
}

func TestUpdateCapture_InTransaction(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")
	require.NoError(t, repo.SetPaymentMetadata(ctx, "order_001", order.PaymentMetadata{
		TransID:             "TXN-1",
		TransDate:           time.Now().UTC(),
		AuthorizationAmount: 100,
		AuthCanBeCaptured:   true,
	}))

	err := repo.InTransaction(ctx, func(tx order.TxStore) error {
		ord, err := tx.GetOrder(ctx, "order_001")
		if err != nil {
			return err
		}
		return tx.UpdateCapture(ctx, ord.ID, 40, order.CapturedPartial, "CAP-1")
	})
	require.NoError(t, err)

	got, err := repo.GetOrder(ctx, "order_001")
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.Payment.CaptureTotal)
	assert.Equal(t, order.CapturedPartial, got.Payment.ChargeCaptured)
	assert.Equal(t, "CAP-1", got.Payment.CaptureTransID)
}

func TestUpdateStatus_WithNotes(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")

	require.NoError(t, repo.UpdateStatus(ctx, "order_001", order.StatusOnHold, "Authorization approved; transaction will be held until captured"))
	require.NoError(t, repo.AddNote(ctx, "order_001", "Second note"))

	got, err := repo.GetOrder(ctx, "order_001")
	require.NoError(t, err)
	assert.Equal(t, order.StatusOnHold, got.Status)

	notes, err := repo.GetNotes(ctx, "order_001")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Authorization approved; transaction will be held until captured", notes[0].Note)
	assert.Equal(t, "Second note", notes[1].Note)
}

func TestCompletePayment_SetsPaidAt(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pool)

	seedOrder(t, repo, "order_001")

	require.NoError(t, repo.CompletePayment(ctx, "order_001"))

	got, err := repo.GetOrder(ctx, "order_001")
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, got.Status)
	require.NotNil(t, got.PaidAt)
	assert.WithinDuration(t, time.Now().UTC(), *got.PaidAt, time.Minute)
}
