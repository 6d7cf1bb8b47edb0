// Package webhook translates inbound gateway responses - browser redirects
// and asynchronous payment notifications - into payment processor calls and
// HTTP outcomes.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/pkg/logger"
)

// Mode selects how the outcome is delivered back to the caller.
type Mode string

const (
	// ModeRedirect means a customer is present in the browser and expects
	// to be redirected somewhere meaningful.
	ModeRedirect Mode = "redirect"
	// ModeNotification means a fire-and-forget webhook; the gateway only
	// needs a 200 so it stops retrying delivery.
	ModeNotification Mode = "notification"
)

// Outcome is the HTTP answer the transport layer should produce.
type Outcome struct {
	Status   int
	Location string
	Notice   string
}

//go:generate mockgen -source adapter.go -destination mock_adapter.go -package webhook

// Parser turns a raw inbound payload into a transaction response and the ID
// of the order it belongs to.
type Parser interface {
	ParseNotification(raw []byte) (payment.TransactionResponse, string, error)
}

// Processor applies a transaction response to an order.
type Processor interface {
	Process(ctx context.Context, ord order.Order, resp payment.TransactionResponse) error
	HoldForReview(ctx context.Context, ord order.Order, reason string) error
}

// OrderGetter resolves orders referenced by inbound payloads.
type OrderGetter interface {
	GetOrder(ctx context.Context, orderID string) (order.Order, error)
}

// URLs are the customer-facing destinations for redirect mode.
type URLs struct {
	ThankYou string
	Retry    string
	Home     string
}

type Adapter struct {
	parser    Parser
	processor Processor
	orders    OrderGetter
	urls      URLs
	log       *logger.Logger
}

func NewAdapter(parser Parser, processor Processor, orders OrderGetter, urls URLs, l *logger.Logger) *Adapter {
	return &Adapter{
		parser:    parser,
		processor: processor,
		orders:    orders,
		urls:      urls,
		log:       l,
	}
}

// HandleInboundResponse parses raw, applies it to the referenced order, and
// maps the result to an HTTP outcome. In notification mode the status is
// always 200: the gateway must not retry delivery no matter how processing
// went, redelivery is handled by our own de-duplication guard.
func (a *Adapter) HandleInboundResponse(ctx context.Context, raw []byte, mode Mode) Outcome {
	a.log.InfoCtx(ctx, "Inbound gateway response: mode=%s payload=%s", mode, maskPayload(raw))

	resp, orderID, err := a.parser.ParseNotification(raw)
	if err != nil {
		// The order cannot be identified from a payload we cannot
		// parse, so no note is written anywhere.
		a.log.ErrorCtx(ctx, "Unparseable inbound payload: error=%v", err)
		return a.finish(mode, Outcome{Status: http.StatusSeeOther, Location: a.urls.Home})
	}

	ord, err := a.orders.GetOrder(ctx, orderID)
	if err != nil {
		a.log.ErrorCtx(ctx, "Order not found for inbound response: order_id=%s error=%v", orderID, err)
		return a.finish(mode, Outcome{Status: http.StatusSeeOther, Location: a.urls.Home})
	}

	err = a.processor.Process(ctx, ord, resp)
	if err == nil {
		return a.finish(mode, Outcome{
			Status:   http.StatusSeeOther,
			Location: orderURL(a.urls.ThankYou, orderID),
		})
	}

	var declined *payment.DeclinedError
	if errors.As(err, &declined) {
		notice := declined.UserMessage
		if notice == "" {
			notice = "Your payment was declined. Please try another payment method."
		}
		return a.finish(mode, Outcome{
			Status:   http.StatusSeeOther,
			Location: orderURL(a.urls.Retry, orderID),
			Notice:   notice,
		})
	}

	// Validation (duplicate) and malformed failures land here. The order
	// state is ambiguous, so it is held for a human instead of inviting a
	// retry that would fail identically.
	a.log.ErrorCtx(ctx, "Holding order after inbound response failure: order_id=%s error=%v", orderID, err)
	if holdErr := a.processor.HoldForReview(ctx, ord, err.Error()); holdErr != nil {
		a.log.ErrorCtx(ctx, "Failed to hold order: order_id=%s error=%v", orderID, holdErr)
	}
	return a.finish(mode, Outcome{Status: http.StatusSeeOther, Location: a.urls.Home})
}

func (a *Adapter) finish(mode Mode, out Outcome) Outcome {
	if mode == ModeNotification {
		return Outcome{Status: http.StatusOK}
	}
	return out
}

func orderURL(base, orderID string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("order", orderID)
	u.RawQuery = q.Encode()
	return u.String()
}

var sensitiveFields = []string{"card_number", "account_number", "check_number", "cvv"}

// maskPayload hides account data before the payload hits the logs.
func maskPayload(raw []byte) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "<non-json payload>"
	}
	for _, f := range sensitiveFields {
		if _, ok := m[f]; ok {
			m[f] = "****"
		}
	}
	masked, err := json.Marshal(m)
	if err != nil {
		return "<unserializable payload>"
	}
	return string(masked)
}
