// Package acmepay is the AcmePay gateway API client. It produces the
// transaction response model consumed by the payment processor and capture
// engine.
package acmepay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paygate/internal/cache"
	"paygate/internal/domain/gateway"
	"paygate/internal/domain/payment"
)

type Client struct {
	BaseURL    string
	CaptureURL string
	QueryURL   string
	HTTP       *http.Client

	cache         *cache.ResponseCache
	cacheLifetime time.Duration
}

func New(baseURL, capturePath, queryPath string, httpClient *http.Client, respCache *cache.ResponseCache, cacheLifetime time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:       baseURL,
		CaptureURL:    baseURL + capturePath,
		QueryURL:      baseURL + queryPath,
		HTTP:          httpClient,
		cache:         respCache,
		cacheLifetime: cacheLifetime,
	}
}

type captureReq struct {
	OrderID        string  `json:"order_id"`
	TransactionID  string  `json:"transaction_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	IdempotencyKey string  `json:"idempotency_key"`
}

// wireResponse is the gateway's transaction result shape, shared by capture
// responses and payment notifications.
type wireResponse struct {
	EventID       string  `json:"event_id,omitempty"`
	OrderID       string  `json:"order_id,omitempty"`
	Result        string  `json:"result"`
	StatusCode    string  `json:"status_code"`
	StatusMessage string  `json:"status_message"`
	UserMessage   string  `json:"user_message,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	PaymentType   string  `json:"payment_type,omitempty"`
	AuthOnly      bool    `json:"auth_only,omitempty"`
	AccountLast4  string  `json:"account_last4,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
}

// Capture settles part of an authorization. Capture is a mutation and never
// goes through the response cache.
func (c *Client) Capture(ctx context.Context, req gateway.CaptureRequest) (payment.TransactionResponse, error) {
	body := captureReq{
		OrderID:        req.OrderID,
		TransactionID:  req.TransID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	}

	j, err := json.Marshal(body)
	if err != nil {
		return payment.TransactionResponse{}, fmt.Errorf("marshal capture request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.CaptureURL, bytes.NewReader(j))
	if err != nil {
		return payment.TransactionResponse{}, fmt.Errorf("create capture request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return payment.TransactionResponse{}, fmt.Errorf("http capture request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return payment.TransactionResponse{}, fmt.Errorf("capture provider %s: %s", resp.Status, string(raw))
	}

	var out wireResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.TransactionResponse{}, &payment.MalformedError{Reason: "capture response", Err: err}
	}

	tr, err := out.toDomain(raw)
	if err != nil {
		return payment.TransactionResponse{}, err
	}
	return tr, nil
}

// GetTransaction looks up the current state of a gateway transaction. The
// lookup is read-only and opts into the response cache; refresh forces an
// upstream call.
func (c *Client) GetTransaction(ctx context.Context, transID string, refresh bool) (payment.TransactionResponse, error) {
	req := &transactionQuery{
		uri:      fmt.Sprintf("%s/%s", c.QueryURL, transID),
		lifetime: c.cacheLifetime,
		refresh:  refresh,
	}

	raw, err := c.cache.GetOrFetch(ctx, req, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, req.uri)
	})
	if err != nil {
		return payment.TransactionResponse{}, err
	}

	var out wireResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.TransactionResponse{}, &payment.MalformedError{Reason: "transaction query response", Err: err}
	}
	return out.toDomain(raw)
}

func (c *Client) get(ctx context.Context, uri string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("provider %s: %s", resp.Status, string(raw))
	}
	return raw, nil
}

// ParseNotification parses an inbound payment notification into the response
// model and the order it belongs to.
func (c *Client) ParseNotification(raw []byte) (payment.TransactionResponse, string, error) {
	var out wireResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.TransactionResponse{}, "", &payment.MalformedError{Reason: "notification payload", Err: err}
	}
	if out.OrderID == "" {
		return payment.TransactionResponse{}, "", &payment.MalformedError{Reason: "notification missing order_id"}
	}

	tr, err := out.toDomain(raw)
	if err != nil {
		return payment.TransactionResponse{}, "", err
	}
	return tr, out.OrderID, nil
}

func (w wireResponse) toDomain(raw []byte) (payment.TransactionResponse, error) {
	var result payment.Result
	switch w.Result {
	case "approved":
		result = payment.ResultApproved
	case "held":
		result = payment.ResultHeld
	case "declined":
		result = payment.ResultDeclined
	default:
		return payment.TransactionResponse{}, &payment.MalformedError{
			Reason: fmt.Sprintf("unknown result %q", w.Result),
		}
	}

	paymentType := payment.TypeOther
	switch w.PaymentType {
	case "credit-card":
		paymentType = payment.TypeCreditCard
	case "echeck":
		paymentType = payment.TypeECheck
	}

	return payment.TransactionResponse{
		Result:        result,
		StatusCode:    w.StatusCode,
		StatusMessage: w.StatusMessage,
		UserMessage:   w.UserMessage,
		TransID:       w.TransactionID,
		PaymentType:   paymentType,
		AuthOnly:      w.AuthOnly,
		AccountLast4:  w.AccountLast4,
		Raw:           json.RawMessage(raw),
	}, nil
}
