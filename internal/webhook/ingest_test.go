package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"paygate/internal/domain/payment"
	"paygate/internal/messaging"
	"paygate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published []messaging.Envelope
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, env messaging.Envelope) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, env)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func TestAsyncIngestor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	raw := []byte(`{"order_id":"ORDER-123","result":"approved"}`)

	t.Run("should queue notification and answer 200", func(t *testing.T) {
		// given
		a, _, _, _ := adapter(t)
		pub := &fakePublisher{}
		ing := NewAsyncIngestor(NewSyncIngestor(a), pub, logger.New("error"))

		// when
		out := ing.Ingest(ctx, raw, ModeNotification)

		// then
		assert.Equal(t, http.StatusOK, out.Status)
		require.Len(t, pub.published, 1)
		env := pub.published[0]
		assert.Equal(t, MsgTypeNotification, env.Type)
		assert.JSONEq(t, string(raw), string(env.Payload))
	})

	t.Run("should process redirect mode inline", func(t *testing.T) {
		// given: a customer is waiting in the browser
		a, parser, processor, orders := adapter(t)
		pub := &fakePublisher{}
		ing := NewAsyncIngestor(NewSyncIngestor(a), pub, logger.New("error"))

		ord := pendingOrder()
		approved := payment.TransactionResponse{Result: payment.ResultApproved, TransID: "TXN-1"}
		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).Return(nil)

		// when
		out := ing.Ingest(ctx, raw, ModeRedirect)

		// then
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Empty(t, pub.published)
	})

	t.Run("should fall back to inline processing when queueing fails", func(t *testing.T) {
		// given
		a, parser, processor, orders := adapter(t)
		pub := &fakePublisher{err: errors.New("broker down")}
		ing := NewAsyncIngestor(NewSyncIngestor(a), pub, logger.New("error"))

		ord := pendingOrder()
		approved := payment.TransactionResponse{Result: payment.ResultApproved, TransID: "TXN-1"}
		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).Return(nil)

		// when
		out := ing.Ingest(ctx, raw, ModeNotification)

		// then
		assert.Equal(t, http.StatusOK, out.Status)
	})
}

func TestNotificationEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	// The consumer reads the envelope back from raw bytes; the payload must
	// survive untouched.
	env, err := messaging.NewEnvelope("ORDER-123", MsgTypeNotification, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)

	value, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded messaging.Envelope
	require.NoError(t, json.Unmarshal(value, &decoded))
	assert.Equal(t, env.EventID, decoded.EventID)
	assert.Equal(t, MsgTypeNotification, decoded.Type)
	assert.JSONEq(t, `{"a":1}`, string(decoded.Payload))
}
