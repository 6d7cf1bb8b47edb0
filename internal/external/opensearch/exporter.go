// Package opensearch indexes processed payments for back-office search.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/pkg/logger"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

// PaymentExporter writes one document per processed payment.
type PaymentExporter struct {
	client *opensearch.Client
	index  string
	log    *logger.Logger
}

func NewPaymentExporter(ctx context.Context, l *logger.Logger, urls []string, index string) (*PaymentExporter, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	exp := &PaymentExporter{client: client, index: index, log: l}
	if err := exp.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return exp, nil
}

func (e *PaymentExporter) ensureIndex(ctx context.Context) error {
	res, err := e.client.Indices.Exists([]string{e.index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"export_id":     map[string]any{"type": "keyword"},
				"order_id":      map[string]any{"type": "keyword"},
				"result":        map[string]any{"type": "keyword"},
				"trans_id":      map[string]any{"type": "keyword"},
				"payment_type":  map[string]any{"type": "keyword"},
				"amount":        map[string]any{"type": "double"},
				"currency":      map[string]any{"type": "keyword"},
				"auth_only":     map[string]any{"type": "boolean"},
				"account_last4": map[string]any{"type": "keyword"},
				"processed_at":  map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := e.client.Indices.Create(
		e.index,
		e.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		e.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type paymentDoc struct {
	ExportID     string    `json:"export_id"`
	OrderID      string    `json:"order_id"`
	Result       string    `json:"result"`
	TransID      string    `json:"trans_id,omitempty"`
	PaymentType  string    `json:"payment_type"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	AuthOnly     bool      `json:"auth_only"`
	AccountLast4 string    `json:"account_last4,omitempty"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// Export indexes a processed payment.
func (e *PaymentExporter) Export(ctx context.Context, ord order.Order, resp payment.TransactionResponse) error {
	exportID := uuid.NewString()
	doc := paymentDoc{
		ExportID:     exportID,
		OrderID:      ord.ID,
		Result:       string(resp.Result),
		TransID:      resp.TransID,
		PaymentType:  string(resp.PaymentType),
		Amount:       ord.Total,
		Currency:     ord.Currency,
		AuthOnly:     resp.AuthOnly,
		AccountLast4: resp.AccountLast4,
		ProcessedAt:  time.Now().UTC(),
	}
	payload, _ := json.Marshal(doc)

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(payload),
		e.client.Index.WithDocumentID(exportID),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

// Hook adapts the exporter to the payment-processed event. Export failures
// are logged; they never fail the payment itself. A successful export emits
// the order-exported event for downstream observers.
func (e *PaymentExporter) Hook(events *payment.Events) payment.ProcessedHook {
	return func(ctx context.Context, ord order.Order, resp payment.TransactionResponse) {
		if err := e.Export(ctx, ord, resp); err != nil {
			e.log.ErrorCtx(ctx, "Failed to export payment: order_id=%s error=%v", ord.ID, err)
			return
		}
		events.EmitOrderExported(ctx, ord.ID)
	}
}
