package order

import "context"

//go:generate mockgen -source store_port.go -destination mock_store.go -package order

// TxStore is the order store surface available both directly and inside a
// transaction. All order-state transitions go through these methods; nothing
// else mutates payment metadata.
type TxStore interface {
	GetOrder(ctx context.Context, id string) (Order, error)

	// AddNote appends to the order's note log.
	AddNote(ctx context.Context, orderID, note string) error

	// UpdateStatus transitions the order and records note when non-empty.
	UpdateStatus(ctx context.Context, orderID string, status Status, note string) error

	// SetPaymentMetadata records the gateway transaction data after a
	// successful authorization or payment.
	SetPaymentMetadata(ctx context.Context, orderID string, meta PaymentMetadata) error

	// ReduceStock decrements inventory for the order. No-ops when stock was
	// already reduced, so a held order followed by completion decrements once.
	ReduceStock(ctx context.Context, orderID string) error

	// CompletePayment performs the payment-complete transition. It does not
	// touch inventory.
	CompletePayment(ctx context.Context, orderID string) error

	// UpdateCapture writes the recomputed capture accumulation state.
	UpdateCapture(ctx context.Context, orderID string, captureTotal float64, captured ChargeCaptured, captureTransID string) error
}

// Store is the full order store port. InTransaction serializes
// read-recompute-write sequences against the storage layer.
type Store interface {
	TxStore
	InTransaction(ctx context.Context, fn func(tx TxStore) error) error
}
