package payment

import (
	"context"
	"sync"

	"paygate/internal/domain/order"
)

// Hook signatures for the events this core exposes to external collaborators
// (admin surfaces, export handlers). Plain callback registration, not a bus.
type (
	ProcessedHook     func(ctx context.Context, ord order.Order, resp TransactionResponse)
	CaptureFailedHook func(ctx context.Context, ord order.Order, resp TransactionResponse)
	StatusChangedHook func(ctx context.Context, orderID string, from, to order.Status)
	ExportedHook      func(ctx context.Context, orderID string)
)

// Events is the observer registry. Registration normally happens once during
// wiring; emission happens on every processed transaction.
type Events struct {
	mu            sync.RWMutex
	processed     []ProcessedHook
	captureFailed []CaptureFailedHook
	statusChanged []StatusChangedHook
	exported      []ExportedHook
}

func NewEvents() *Events {
	return &Events{}
}

func (e *Events) OnPaymentProcessed(h ProcessedHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.processed = append(e.processed, h)
}

func (e *Events) OnCaptureFailed(h CaptureFailedHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.captureFailed = append(e.captureFailed, h)
}

func (e *Events) OnOrderStatusChanged(h StatusChangedHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statusChanged = append(e.statusChanged, h)
}

func (e *Events) OnOrderExported(h ExportedHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exported = append(e.exported, h)
}

func (e *Events) EmitPaymentProcessed(ctx context.Context, ord order.Order, resp TransactionResponse) {
	e.mu.RLock()
	hooks := e.processed
	e.mu.RUnlock()
	for _, h := range hooks {
		h(ctx, ord, resp)
	}
}

func (e *Events) EmitCaptureFailed(ctx context.Context, ord order.Order, resp TransactionResponse) {
	e.mu.RLock()
	hooks := e.captureFailed
	e.mu.RUnlock()
	for _, h := range hooks {
		h(ctx, ord, resp)
	}
}

func (e *Events) EmitOrderStatusChanged(ctx context.Context, orderID string, from, to order.Status) {
	e.mu.RLock()
	hooks := e.statusChanged
	e.mu.RUnlock()
	for _, h := range hooks {
		h(ctx, orderID, from, to)
	}
}

func (e *Events) EmitOrderExported(ctx context.Context, orderID string) {
	e.mu.RLock()
	hooks := e.exported
	e.mu.RUnlock()
	for _, h := range hooks {
		h(ctx, orderID)
	}
}
