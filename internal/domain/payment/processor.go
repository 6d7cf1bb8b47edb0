package payment

import (
	"context"
	"fmt"
	"time"

	"paygate/internal/domain/order"
	"paygate/pkg/logger"
	"paygate/pkg/metrics"
)

// Config carries the gateway capability flags the processor honors.
type Config struct {
	// AuthorizationOnly marks a gateway that reserves funds without
	// settling. Approved orders are held instead of completed.
	AuthorizationOnly bool
	// HeldOrderStatus is the status used for held orders. Default "on-hold".
	HeldOrderStatus order.Status
	// DetailedDeclineMessages attaches gateway-supplied customer messages to
	// decline errors.
	DetailedDeclineMessages bool
}

// Processor converts a gateway transaction response into exactly one
// order-state transition. Every guard re-reads persisted order state, so a
// concurrent duplicate delivery observes the first caller's committed result.
type Processor struct {
	store    order.Store
	cfg      Config
	messages *MessageRegistry
	events   *Events
	log      *logger.Logger
	now      func() time.Time
}

func NewProcessor(store order.Store, cfg Config, events *Events, l *logger.Logger) *Processor {
	if cfg.HeldOrderStatus == "" {
		cfg.HeldOrderStatus = order.StatusOnHold
	}
	return &Processor{
		store:    store,
		cfg:      cfg,
		messages: NewMessageRegistry(),
		events:   events,
		log:      l,
		now:      time.Now,
	}
}

// Messages exposes the approved-message registry for gateway-specific
// formatter registration at wiring time.
func (p *Processor) Messages() *MessageRegistry {
	return p.messages
}

// Process validates resp against ord and drives the order through one of the
// approved, held or failed outcomes. Declines return a *DeclinedError, stale
// or duplicate deliveries a *ValidationError; anything else is a store error.
func (p *Processor) Process(ctx context.Context, ord order.Order, resp TransactionResponse) error {
	if !ord.NeedsPayment() {
		// De-duplication guard against double delivery of asynchronous
		// notifications: note it, change nothing.
		if err := p.store.AddNote(ctx, ord.ID, "Duplicate transaction received: order no longer needs payment"); err != nil {
			p.log.ErrorCtx(ctx, "Failed to record duplicate transaction note: order_id=%s error=%v", ord.ID, err)
		}
		metrics.PaymentsProcessed.WithLabelValues("duplicate").Inc()
		return &ValidationError{Reason: "order no longer needs payment"}
	}

	switch {
	case resp.Declined():
		return p.fail(ctx, ord, resp)
	case resp.Held() || (resp.Approved() && (resp.AuthOnly || p.cfg.AuthorizationOnly)):
		return p.hold(ctx, ord, resp)
	case resp.Approved():
		if err := p.store.AddNote(ctx, ord.ID, p.messages.ApprovedMessage(resp)); err != nil {
			return fmt.Errorf("record approval note: %w", err)
		}
		return p.markPaid(ctx, ord, resp, false)
	default:
		metrics.PaymentsProcessed.WithLabelValues("malformed").Inc()
		return &MalformedError{Reason: fmt.Sprintf("unknown transaction result %q", resp.Result)}
	}
}

// HoldForReview places an order that still needs payment on hold. Used by the
// inbound boundary when a response fails in a non-recoverable way after the
// order was resolved.
func (p *Processor) HoldForReview(ctx context.Context, ord order.Order, reason string) error {
	if !ord.NeedsPayment() {
		return nil
	}
	note := fmt.Sprintf("Order held for review: %s", reason)
	if err := p.store.UpdateStatus(ctx, ord.ID, p.cfg.HeldOrderStatus, note); err != nil {
		return fmt.Errorf("hold order: %w", err)
	}
	p.events.EmitOrderStatusChanged(ctx, ord.ID, ord.Status, p.cfg.HeldOrderStatus)
	return nil
}

func (p *Processor) hold(ctx context.Context, ord order.Order, resp TransactionResponse) error {
	var note string
	switch {
	case resp.Held() && resp.StatusMessage != "":
		note = fmt.Sprintf("Transaction held for review: %s", resp.StatusMessage)
	case resp.Held():
		note = "Transaction held for review"
	default:
		note = "Authorization approved; transaction will be held until captured"
	}

	if err := p.store.AddNote(ctx, ord.ID, note); err != nil {
		return fmt.Errorf("record held note: %w", err)
	}
	return p.markPaid(ctx, ord, resp, true)
}

// markPaid attaches the gateway transaction metadata and performs the single
// payment transition. Held orders reduce inventory without completing
// payment; a later capture completes payment without touching inventory
// again.
func (p *Processor) markPaid(ctx context.Context, ord order.Order, resp TransactionResponse, held bool) error {
	meta := order.PaymentMetadata{
		TransID:             resp.TransID,
		TransDate:           p.now(),
		AuthorizationAmount: ord.Total,
		ChargeCaptured:      order.CapturedNo,
		AuthCanBeCaptured:   resp.AuthOnly || p.cfg.AuthorizationOnly,
	}
	if err := p.store.SetPaymentMetadata(ctx, ord.ID, meta); err != nil {
		return fmt.Errorf("set payment metadata: %w", err)
	}

	if held {
		if err := p.store.UpdateStatus(ctx, ord.ID, p.cfg.HeldOrderStatus, ""); err != nil {
			return fmt.Errorf("hold order: %w", err)
		}
		if err := p.store.ReduceStock(ctx, ord.ID); err != nil {
			return fmt.Errorf("reduce stock: %w", err)
		}
		p.events.EmitOrderStatusChanged(ctx, ord.ID, ord.Status, p.cfg.HeldOrderStatus)
		metrics.PaymentsProcessed.WithLabelValues("held").Inc()
	} else {
		if err := p.store.ReduceStock(ctx, ord.ID); err != nil {
			return fmt.Errorf("reduce stock: %w", err)
		}
		if err := p.store.CompletePayment(ctx, ord.ID); err != nil {
			return fmt.Errorf("complete payment: %w", err)
		}
		p.events.EmitOrderStatusChanged(ctx, ord.ID, ord.Status, order.StatusProcessing)
		metrics.PaymentsProcessed.WithLabelValues("approved").Inc()
	}

	p.events.EmitPaymentProcessed(ctx, ord, resp)
	p.log.InfoCtx(ctx, "Transaction processed: order_id=%s result=%s trans_id=%s held=%t",
		ord.ID, resp.Result, resp.TransID, held)
	return nil
}

func (p *Processor) fail(ctx context.Context, ord order.Order, resp TransactionResponse) error {
	msg := fmt.Sprintf("Transaction Failed (%s): %s", resp.StatusCode, resp.StatusMessage)
	if resp.TransID != "" {
		msg = fmt.Sprintf("%s (Transaction ID %s)", msg, resp.TransID)
	}

	declined := &DeclinedError{Code: resp.StatusCode, Message: msg}
	if p.cfg.DetailedDeclineMessages && resp.UserMessage != "" {
		declined.UserMessage = resp.UserMessage
	}

	if err := p.store.UpdateStatus(ctx, ord.ID, order.StatusFailed, msg); err != nil {
		return fmt.Errorf("mark order failed: %w", err)
	}
	p.events.EmitOrderStatusChanged(ctx, ord.ID, ord.Status, order.StatusFailed)
	metrics.PaymentsProcessed.WithLabelValues("declined").Inc()
	return declined
}
