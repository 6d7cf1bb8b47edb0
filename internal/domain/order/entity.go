package order

import (
	"errors"
	"slices"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusOnHold     Status = "on-hold"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

var AvailableStatuses = []Status{
	StatusPending, StatusOnHold, StatusProcessing, StatusCompleted,
	StatusFailed, StatusCancelled, StatusRefunded,
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid order status")
}

// ChargeCaptured tracks how much of an authorization has been settled.
type ChargeCaptured string

const (
	CapturedNo      ChargeCaptured = "no"
	CapturedPartial ChargeCaptured = "partial"
	CapturedYes     ChargeCaptured = "yes"
)

// PaymentMetadata holds the gateway transaction state recorded against an
// order. Replaces the loosely-typed metadata bag of older integrations.
type PaymentMetadata struct {
	TransID             string
	TransDate           time.Time
	AuthorizationAmount float64
	CaptureTotal        float64
	ChargeCaptured      ChargeCaptured
	CaptureTransID      string
	AuthCanBeCaptured   bool
}

type Order struct {
	ID           string
	Status       Status
	Total        float64
	Currency     string
	StockReduced bool
	Payment      PaymentMetadata
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsPayment reports whether the order is still waiting for a successful
// payment. A second delivery of the same gateway response sees this as false
// and is rejected before any state change.
func (o Order) NeedsPayment() bool {
	return o.Status == StatusPending || o.Status == StatusFailed
}

// IsReadyForCapture reports whether a capture may be attempted at all:
// the order has a recorded authorization and is not in a terminal state.
func (o Order) IsReadyForCapture() bool {
	switch o.Status {
	case StatusCancelled, StatusRefunded, StatusFailed:
		return false
	}
	return o.Payment.TransID != ""
}

// AuthorizationExpired reports whether the authorization is older than the
// gateway's capture window. Elapsed hours truncate toward zero; an attempt at
// exactly the window boundary is still allowed.
func (o Order) AuthorizationExpired(now time.Time, windowHours int) bool {
	if o.Payment.TransDate.IsZero() {
		return false
	}
	elapsed := int(now.Sub(o.Payment.TransDate).Hours())
	return elapsed > windowHours
}

// IsFullyCaptured reports whether the accumulated capture total has reached
// the capture maximum.
func (o Order) IsFullyCaptured(captureMax float64) bool {
	return o.Payment.CaptureTotal >= captureMax
}
