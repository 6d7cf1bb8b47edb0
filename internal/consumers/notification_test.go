package consumers

import (
	"context"
	"encoding/json"
	"testing"

	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/internal/messaging"
	"paygate/internal/webhook"
	"paygate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notificationConsumer(t *testing.T) (*NotificationConsumer, *webhook.MockParser, *webhook.MockProcessor, *webhook.MockOrderGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	parser := webhook.NewMockParser(ctrl)
	processor := webhook.NewMockProcessor(ctrl)
	orders := webhook.NewMockOrderGetter(ctrl)

	l := logger.New("error")
	adapter := webhook.NewAdapter(parser, processor, orders, webhook.URLs{}, l)
	c := NewNotificationConsumer(l, adapter, "gateway.notifications", "paygate-notifications")

	return c, parser, processor, orders
}

func TestNotificationConsumer_HandleMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	raw := json.RawMessage(`{"order_id":"ORDER-123","result":"approved"}`)

	t.Run("should process a queued notification", func(t *testing.T) {
		// given
		c, parser, processor, orders := notificationConsumer(t)
		ord := order.Order{ID: "ORDER-123", Status: order.StatusPending, Total: 100}
		approved := payment.TransactionResponse{Result: payment.ResultApproved, TransID: "TXN-1"}

		env, err := messaging.NewEnvelope(ord.ID, webhook.MsgTypeNotification, raw)
		require.NoError(t, err)
		value, err := json.Marshal(env)
		require.NoError(t, err)

		parser.EXPECT().ParseNotification([]byte(raw)).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).Return(nil)

		// when
		err = c.HandleMessage(ctx, []byte(ord.ID), value)

		// then
		assert.NoError(t, err)
	})

	t.Run("should fail on unparseable envelope", func(t *testing.T) {
		// given
		c, _, _, _ := notificationConsumer(t)

		// when
		err := c.HandleMessage(ctx, []byte("key"), []byte(`not an envelope`))

		// then
		assert.Error(t, err)
	})

	t.Run("should skip unexpected message types", func(t *testing.T) {
		// given
		c, _, _, _ := notificationConsumer(t)
		env, err := messaging.NewEnvelope("k", "some.other.event", raw)
		require.NoError(t, err)
		value, err := json.Marshal(env)
		require.NoError(t, err)

		// when
		err = c.HandleMessage(ctx, []byte("k"), value)

		// then: committed, not retried
		assert.NoError(t, err)
	})
}
