package gateway

import (
	"context"

	"paygate/internal/domain/payment"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Provider is the upstream gateway API client port.
type Provider interface {
	// Capture settles some or all of a previously authorized amount and
	// returns the gateway's classification of the attempt.
	Capture(ctx context.Context, req CaptureRequest) (payment.TransactionResponse, error)
}

type CaptureRequest struct {
	OrderID string
	// TransID is the original authorization transaction being captured.
	TransID        string
	Amount         float64
	Currency       string
	IdempotencyKey string
}
