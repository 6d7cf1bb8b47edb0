// Package capture decides whether, and for how much, a previously authorized
// order may be settled.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paygate/internal/domain/gateway"
	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/pkg/logger"
	"paygate/pkg/metrics"
)

// Code identifies the outcome of a capture attempt. Configuration errors map
// to 500, state errors to 400, so callers can tell a broken integration from
// an order that is simply not capturable.
type Code string

const (
	CodeCaptured        Code = "captured"
	CodeNotSupported    Code = "capture_not_supported"
	CodeInvalidAmount   Code = "invalid_amount"
	CodeOrderNotReady   Code = "order_not_ready"
	CodeAuthExpired     Code = "authorization_expired"
	CodeAlreadyCaptured Code = "already_captured"
	CodeDeclined        Code = "gateway_declined"
	CodeError           Code = "gateway_error"
)

// HTTPStatus maps the code to an HTTP response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeCaptured:
		return 200
	case CodeNotSupported:
		return 500
	case CodeInvalidAmount, CodeOrderNotReady, CodeAuthExpired, CodeAlreadyCaptured:
		return 400
	case CodeDeclined:
		return 402
	default:
		return 502
	}
}

// Result is returned instead of an error because capture runs in bulk and
// background contexts where a structured outcome is easier to route.
type Result struct {
	Success        bool    `json:"success"`
	Code           Code    `json:"code"`
	Message        string  `json:"message"`
	CapturedAmount float64 `json:"captured_amount,omitempty"`
	TransID        string  `json:"trans_id,omitempty"`
}

// Config holds the gateway capture capability flags.
type Config struct {
	SupportsCapture        bool
	SupportsPartialCapture bool
	PartialCaptureEnabled  bool
	// AuthorizationTimeWindow is the capture window in hours. Default 720.
	AuthorizationTimeWindow int
	// CaptureMaximum optionally raises the capture ceiling above the
	// authorization amount (tip/tolerance adjustments). The override is a
	// trust boundary of the gateway integration; it is not bounded here.
	CaptureMaximum func(ord order.Order) float64
}

const defaultAuthWindowHours = 30 * 24

type Engine struct {
	store    order.Store
	provider gateway.Provider
	cfg      Config
	events   *payment.Events
	log      *logger.Logger
	now      func() time.Time
}

func NewEngine(store order.Store, provider gateway.Provider, cfg Config, events *payment.Events, l *logger.Logger) *Engine {
	if cfg.AuthorizationTimeWindow <= 0 {
		cfg.AuthorizationTimeWindow = defaultAuthWindowHours
	}
	return &Engine{
		store:    store,
		provider: provider,
		cfg:      cfg,
		events:   events,
		log:      l,
		now:      time.Now,
	}
}

// Capture settles amount against the order's authorization. A nil amount
// captures everything remaining up to the capture maximum. Preconditions are
// re-checked against persisted state inside the accumulation transaction, so
// concurrent attempts cannot settle past the ceiling.
func (e *Engine) Capture(ctx context.Context, orderID string, amount *float64) Result {
	if !e.cfg.SupportsCapture {
		return e.fail(CodeNotSupported, "gateway does not support capture")
	}

	if amount != nil && *amount <= 0 {
		return e.fail(CodeInvalidAmount, fmt.Sprintf("capture amount must be positive, got %.2f", *amount))
	}

	ord, err := e.store.GetOrder(ctx, orderID)
	if err != nil {
		return e.fail(CodeOrderNotReady, fmt.Sprintf("load order %s: %v", orderID, err))
	}

	if res := e.check(ord); res != nil {
		return *res
	}

	max := e.captureMax(ord)
	amt := max - ord.Payment.CaptureTotal
	if amount != nil && e.partialAllowed() && *amount < amt {
		amt = *amount
	}

	resp, err := e.provider.Capture(ctx, gateway.CaptureRequest{
		OrderID:        ord.ID,
		TransID:        ord.Payment.TransID,
		Amount:         amt,
		Currency:       ord.Currency,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		// Inconclusive network failure: no order mutation, caller retries.
		return e.fail(CodeError, fmt.Sprintf("capture call: %v", err))
	}

	if !resp.Approved() {
		e.events.EmitCaptureFailed(ctx, ord, resp)
		note := fmt.Sprintf("Capture Failed (%s): %s", resp.StatusCode, resp.StatusMessage)
		if err := e.store.AddNote(ctx, ord.ID, note); err != nil {
			e.log.ErrorCtx(ctx, "Failed to record capture decline note: order_id=%s error=%v", ord.ID, err)
		}
		return e.fail(CodeDeclined, note)
	}

	var res Result
	var completed bool
	err = e.store.InTransaction(ctx, func(tx order.TxStore) error {
		cur, err := tx.GetOrder(ctx, ord.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}

		// A concurrent capture may have committed since the pre-check
		// read. Re-run the ceiling guard against the persisted total and
		// clamp to what is actually left, so stacked attempts never write
		// past the capture maximum.
		curMax := e.captureMax(cur)
		remaining := curMax - cur.Payment.CaptureTotal
		if remaining <= 0 {
			res = e.fail(CodeAlreadyCaptured, fmt.Sprintf("order %s is already fully captured", cur.ID))
			return nil
		}
		if amt > remaining {
			amt = remaining
		}

		newTotal := cur.Payment.CaptureTotal + amt
		captured := order.CapturedYes
		if newTotal < curMax {
			captured = order.CapturedPartial
		}
		if err := tx.UpdateCapture(ctx, cur.ID, newTotal, captured, resp.TransID); err != nil {
			return fmt.Errorf("update capture totals: %w", err)
		}

		note := fmt.Sprintf("%.2f %s captured", amt, cur.Currency)
		if resp.TransID != "" {
			note = fmt.Sprintf("%s (Transaction ID %s)", note, resp.TransID)
		}
		if err := tx.AddNote(ctx, cur.ID, note); err != nil {
			return fmt.Errorf("record capture note: %w", err)
		}

		// Full coverage completes payment. Stock was already reduced at
		// authorization time and is not touched again.
		if newTotal >= cur.Total && cur.PaidAt == nil {
			if err := tx.CompletePayment(ctx, cur.ID); err != nil {
				return fmt.Errorf("complete payment: %w", err)
			}
			completed = true
		}

		res = Result{
			Success:        true,
			Code:           CodeCaptured,
			Message:        note,
			CapturedAmount: amt,
			TransID:        resp.TransID,
		}
		return nil
	})
	if err != nil {
		return e.fail(CodeError, err.Error())
	}
	if !res.Success {
		return res
	}

	if completed {
		e.events.EmitOrderStatusChanged(ctx, ord.ID, ord.Status, order.StatusProcessing)
	}
	metrics.CapturesTotal.WithLabelValues(string(CodeCaptured)).Inc()
	metrics.CapturedAmount.Add(amt)
	e.log.InfoCtx(ctx, "Capture succeeded: order_id=%s amount=%.2f trans_id=%s", ord.ID, amt, resp.TransID)
	return res
}

// MaybePerformCapture is the automatic capture-on-paid-status path. Any
// failed precondition makes it a silent no-op so unrelated status-change
// listeners never see internal errors.
func (e *Engine) MaybePerformCapture(ctx context.Context, orderID string) {
	if !e.cfg.SupportsCapture {
		return
	}
	ord, err := e.store.GetOrder(ctx, orderID)
	if err != nil {
		return
	}
	if e.check(ord) != nil {
		return
	}
	e.Capture(ctx, orderID, nil)
}

// StatusHook returns an order-status observer that triggers automatic capture
// when an order enters one of the configured statuses.
func (e *Engine) StatusHook(statuses []order.Status) payment.StatusChangedHook {
	set := make(map[order.Status]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return func(ctx context.Context, orderID string, _, to order.Status) {
		if _, ok := set[to]; ok {
			e.MaybePerformCapture(ctx, orderID)
		}
	}
}

// check runs the fast, side-effect-free guards in order and returns the first
// failure.
func (e *Engine) check(ord order.Order) *Result {
	if !ord.IsReadyForCapture() {
		r := e.fail(CodeOrderNotReady, fmt.Sprintf("order %s is not ready for capture", ord.ID))
		return &r
	}
	if ord.AuthorizationExpired(e.now(), e.cfg.AuthorizationTimeWindow) {
		r := e.fail(CodeAuthExpired, fmt.Sprintf("authorization for order %s has expired", ord.ID))
		return &r
	}
	if ord.IsFullyCaptured(e.captureMax(ord)) {
		r := e.fail(CodeAlreadyCaptured, fmt.Sprintf("order %s is already fully captured", ord.ID))
		return &r
	}
	return nil
}

func (e *Engine) captureMax(ord order.Order) float64 {
	max := ord.Payment.AuthorizationAmount
	if max == 0 {
		max = ord.Total
	}
	if e.cfg.CaptureMaximum != nil {
		if v := e.cfg.CaptureMaximum(ord); v > max {
			max = v
		}
	}
	return max
}

func (e *Engine) partialAllowed() bool {
	return e.cfg.SupportsPartialCapture && e.cfg.PartialCaptureEnabled
}

func (e *Engine) fail(code Code, msg string) Result {
	metrics.CapturesTotal.WithLabelValues(string(code)).Inc()
	return Result{Success: false, Code: code, Message: msg}
}
