package acmepay

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
)

// transactionQuery is the cacheable read against the gateway's transaction
// query endpoint.
type transactionQuery struct {
	uri      string
	lifetime time.Duration
	refresh  bool
}

func (q *transactionQuery) URI() string                  { return q.uri }
func (q *transactionQuery) Body() []byte                 { return nil }
func (q *transactionQuery) IsCacheable() bool            { return true }
func (q *transactionQuery) CacheLifetime() time.Duration { return q.lifetime }
func (q *transactionQuery) ShouldRefresh() bool          { return q.refresh }

// HostedPaymentParams is the query string the shopper is redirected to the
// gateway's hosted payment page with.
type HostedPaymentParams struct {
	OrderID   string  `url:"order_id"`
	Amount    float64 `url:"amount"`
	Currency  string  `url:"currency"`
	ReturnURL string  `url:"return_url"`
	NotifyURL string  `url:"notify_url"`
	AuthOnly  bool    `url:"auth_only,omitempty"`
}

// HostedPaymentURL builds the redirect URL that sends the shopper to the
// gateway's hosted payment page for the given order.
func (c *Client) HostedPaymentURL(ord order.Order, returnURL, notifyURL string, authOnly bool) (string, error) {
	if c.BaseURL == "" {
		return "", &payment.ConfigError{Reason: "gateway base URL not configured"}
	}

	params := HostedPaymentParams{
		OrderID:   ord.ID,
		Amount:    ord.Total,
		Currency:  ord.Currency,
		ReturnURL: returnURL,
		NotifyURL: notifyURL,
		AuthOnly:  authOnly,
	}

	v, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encode hosted payment params: %w", err)
	}

	u, err := url.Parse(c.BaseURL + "/hosted/pay")
	if err != nil {
		return "", fmt.Errorf("parse hosted payment url: %w", err)
	}
	u.RawQuery = v.Encode()
	return u.String(), nil
}
