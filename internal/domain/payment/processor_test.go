package payment

import (
	"context"
	"errors"
	"testing"

	"paygate/internal/domain/order"
	"paygate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func processor(t *testing.T, cfg Config) (*Processor, *order.MockStore, *Events) {
	t.Helper()

	mockStore := order.NewMockStore(gomock.NewController(t))
	events := NewEvents()
	p := NewProcessor(mockStore, cfg, events, logger.New("error"))

	return p, mockStore, events
}

func pendingOrder() order.Order {
	return order.Order{
		ID:       "ORDER-123",
		Status:   order.StatusPending,
		Total:    100,
		Currency: "USD",
	}
}

func TestProcessor_Process_Approved(t *testing.T) {
	t.Parallel()

	t.Run("should complete payment on approved response", func(t *testing.T) {
		// given
		p, mockStore, events := processor(t, Config{})
		ctx := context.Background()
		ord := pendingOrder()
		resp := TransactionResponse{
			Result:      ResultApproved,
			TransID:     "TXN-1",
			PaymentType: TypeCreditCard,
		}

		var processedCount int
		events.OnPaymentProcessed(func(_ context.Context, _ order.Order, _ TransactionResponse) {
			processedCount++
		})

		mockStore.EXPECT().AddNote(ctx, ord.ID, gomock.Any()).Return(nil)
		mockStore.EXPECT().SetPaymentMetadata(ctx, ord.ID, metaWithTransID("TXN-1")).Return(nil)
		mockStore.EXPECT().ReduceStock(ctx, ord.ID).Return(nil)
		mockStore.EXPECT().CompletePayment(ctx, ord.ID).Return(nil)

		// when
		err := p.Process(ctx, ord, resp)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, processedCount)
	})

	t.Run("should hold instead of complete when gateway is authorization-only", func(t *testing.T) {
		// given
		p, mockStore, _ := processor(t, Config{AuthorizationOnly: true})
		ctx := context.Background()
		ord := pendingOrder()
		resp := TransactionResponse{Result: ResultApproved, TransID: "TXN-2"}

		mockStore.EXPECT().AddNote(ctx, ord.ID, "Authorization approved; transaction will be held until captured").Return(nil)
		mockStore.EXPECT().SetPaymentMetadata(ctx, ord.ID, metaWithTransID("TXN-2")).Return(nil)
		mockStore.EXPECT().UpdateStatus(ctx, ord.ID, order.StatusOnHold, "").Return(nil)
		mockStore.EXPECT().ReduceStock(ctx, ord.ID).Return(nil)

		// when
		err := p.Process(ctx, ord, resp)

		// then
		require.NoError(t, err)
	})

	t.Run("should use configured held status", func(t *testing.T) {
		// given
		p, mockStore, _ := processor(t, Config{HeldOrderStatus: order.StatusPending})
		ctx := context.Background()
		ord := pendingOrder()
		resp := TransactionResponse{Result: ResultHeld, StatusMessage: "manual review"}

		mockStore.EXPECT().AddNote(ctx, ord.ID, "Transaction held for review: manual review").Return(nil)
		mockStore.EXPECT().SetPaymentMetadata(ctx, ord.ID, gomock.Any()).Return(nil)
		mockStore.EXPECT().UpdateStatus(ctx, ord.ID, order.StatusPending, "").Return(nil)
		mockStore.EXPECT().ReduceStock(ctx, ord.ID).Return(nil)

		// when
		err := p.Process(ctx, ord, resp)

		// then
		require.NoError(t, err)
	})
}

func TestProcessor_Process_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("should reject second delivery without mutating the order", func(t *testing.T) {
		// given
		p, mockStore, events := processor(t, Config{})
		ctx := context.Background()
		ord := pendingOrder()
		ord.Status = order.StatusProcessing // already paid

		var processedCount int
		events.OnPaymentProcessed(func(_ context.Context, _ order.Order, _ TransactionResponse) {
			processedCount++
		})

		mockStore.EXPECT().
			AddNote(ctx, ord.ID, "Duplicate transaction received: order no longer needs payment").
			Return(nil)

		// when
		err := p.Process(ctx, ord, TransactionResponse{Result: ResultApproved, TransID: "TXN-1"})

		// then
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, 0, processedCount)
	})
}

func TestProcessor_Process_Declined(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		cfg             Config
		resp            TransactionResponse
		expectedNote    string
		expectedUserMsg string
	}{
		{
			name: "should fail order with diagnostic message",
			cfg:  Config{},
			resp: TransactionResponse{
				Result:        ResultDeclined,
				StatusCode:    "2",
				StatusMessage: "insufficient funds",
				TransID:       "TXN-9",
				UserMessage:   "Your card was declined.",
			},
			expectedNote:    "Transaction Failed (2): insufficient funds (Transaction ID TXN-9)",
			expectedUserMsg: "", // detailed messages disabled
		},
		{
			name: "should attach user message when detailed declines enabled",
			cfg:  Config{DetailedDeclineMessages: true},
			resp: TransactionResponse{
				Result:        ResultDeclined,
				StatusCode:    "3",
				StatusMessage: "do not honor",
				UserMessage:   "Your card was declined.",
			},
			expectedNote:    "Transaction Failed (3): do not honor",
			expectedUserMsg: "Your card was declined.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			p, mockStore, _ := processor(t, tc.cfg)
			ctx := context.Background()
			ord := pendingOrder()

			mockStore.EXPECT().
				UpdateStatus(ctx, ord.ID, order.StatusFailed, tc.expectedNote).
				Return(nil)

			// when
			err := p.Process(ctx, ord, tc.resp)

			// then
			var declined *DeclinedError
			require.ErrorAs(t, err, &declined)
			assert.Equal(t, tc.expectedNote, declined.Message)
			assert.Equal(t, tc.expectedUserMsg, declined.UserMessage)
		})
	}
}

func TestProcessor_Process_Malformed(t *testing.T) {
	t.Parallel()

	// given
	p, _, _ := processor(t, Config{})
	ctx := context.Background()

	// when
	err := p.Process(ctx, pendingOrder(), TransactionResponse{Result: "garbage"})

	// then
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestProcessor_HoldForReview(t *testing.T) {
	t.Parallel()

	t.Run("should hold order that still needs payment", func(t *testing.T) {
		// given
		p, mockStore, _ := processor(t, Config{})
		ctx := context.Background()
		ord := pendingOrder()

		mockStore.EXPECT().
			UpdateStatus(ctx, ord.ID, order.StatusOnHold, "Order held for review: ambiguous response").
			Return(nil)

		// when
		err := p.HoldForReview(ctx, ord, "ambiguous response")

		// then
		require.NoError(t, err)
	})

	t.Run("should no-op on paid order", func(t *testing.T) {
		// given
		p, _, _ := processor(t, Config{})
		ord := pendingOrder()
		ord.Status = order.StatusCompleted

		// when
		err := p.HoldForReview(context.Background(), ord, "whatever")

		// then
		require.NoError(t, err)
	})
}

func TestProcessor_Process_StoreFailure(t *testing.T) {
	t.Parallel()

	// given
	p, mockStore, _ := processor(t, Config{})
	ctx := context.Background()
	ord := pendingOrder()

	mockStore.EXPECT().AddNote(ctx, ord.ID, gomock.Any()).Return(nil)
	mockStore.EXPECT().
		SetPaymentMetadata(ctx, ord.ID, gomock.Any()).
		Return(errors.New("database error"))

	// when
	err := p.Process(ctx, ord, TransactionResponse{Result: ResultApproved, TransID: "TXN-1"})

	// then
	assert.EqualError(t, err, "set payment metadata: database error")
}

// metaWithTransID matches payment metadata by transaction ID, ignoring the
// wall-clock transaction date.
func metaWithTransID(transID string) gomock.Matcher {
	return metaMatcher{transID: transID}
}

type metaMatcher struct {
	transID string
}

func (m metaMatcher) Matches(x any) bool {
	meta, ok := x.(order.PaymentMetadata)
	return ok && meta.TransID == m.transID && !meta.TransDate.IsZero()
}

func (m metaMatcher) String() string {
	return "payment metadata with trans_id " + m.transID
}
