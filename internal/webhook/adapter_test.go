package webhook

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testURLs = URLs{
	ThankYou: "https://shop.example/thank-you",
	Retry:    "https://shop.example/checkout",
	Home:     "https://shop.example/",
}

func adapter(t *testing.T) (*Adapter, *MockParser, *MockProcessor, *MockOrderGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	parser := NewMockParser(ctrl)
	processor := NewMockProcessor(ctrl)
	orders := NewMockOrderGetter(ctrl)

	a := NewAdapter(parser, processor, orders, testURLs, logger.New("error"))
	return a, parser, processor, orders
}

func pendingOrder() order.Order {
	return order.Order{ID: "ORDER-123", Status: order.StatusPending, Total: 100, Currency: "USD"}
}

func TestAdapter_HandleInboundResponse_Redirect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	raw := []byte(`{"order_id":"ORDER-123","result":"approved"}`)
	approved := payment.TransactionResponse{Result: payment.ResultApproved, TransID: "TXN-1"}

	t.Run("should redirect to thank-you page on success", func(t *testing.T) {
		// given
		a, parser, processor, orders := adapter(t)
		ord := pendingOrder()

		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).Return(nil)

		// when
		out := a.HandleInboundResponse(ctx, raw, ModeRedirect)

		// then
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Equal(t, "https://shop.example/thank-you?order=ORDER-123", out.Location)
		assert.Empty(t, out.Notice)
	})

	t.Run("should redirect to retry page with notice on decline", func(t *testing.T) {
		// given
		a, parser, processor, orders := adapter(t)
		ord := pendingOrder()

		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).
			Return(&payment.DeclinedError{Code: "2", Message: "declined", UserMessage: "Card declined."})

		// when
		out := a.HandleInboundResponse(ctx, raw, ModeRedirect)

		// then
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Equal(t, "https://shop.example/checkout?order=ORDER-123", out.Location)
		assert.Equal(t, "Card declined.", out.Notice)
	})

	t.Run("should use a generic notice when decline carries no user message", func(t *testing.T) {
		// given
		a, parser, processor, orders := adapter(t)
		ord := pendingOrder()

		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).
			Return(&payment.DeclinedError{Code: "2", Message: "declined"})

		// when
		out := a.HandleInboundResponse(ctx, raw, ModeRedirect)

		// then
		assert.NotEmpty(t, out.Notice)
	})

	t.Run("should hold order and redirect home on duplicate delivery", func(t *testing.T) {
		// given
		a, parser, processor, orders := adapter(t)
		ord := pendingOrder()
		dupErr := &payment.ValidationError{Reason: "order no longer needs payment"}

		parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
		orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
		processor.EXPECT().Process(ctx, ord, approved).Return(dupErr)
		processor.EXPECT().HoldForReview(ctx, ord, dupErr.Error()).Return(nil)

		// when
		out := a.HandleInboundResponse(ctx, raw, ModeRedirect)

		// then: no customer notice on an ambiguous state
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Equal(t, testURLs.Home, out.Location)
		assert.Empty(t, out.Notice)
	})

	t.Run("should redirect home when payload is unparseable", func(t *testing.T) {
		// given: no order can be resolved, so nothing is held or noted
		a, parser, processor, _ := adapter(t)
		garbage := []byte(`not json`)

		parser.EXPECT().ParseNotification(garbage).
			Return(payment.TransactionResponse{}, "", &payment.MalformedError{Reason: "notification payload"})
		processor.EXPECT().HoldForReview(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// when
		out := a.HandleInboundResponse(ctx, garbage, ModeRedirect)

		// then
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Equal(t, testURLs.Home, out.Location)
	})

	t.Run("should redirect home when order cannot be found", func(t *testing.T) {
		// given
		a, parser, _, orders := adapter(t)

		parser.EXPECT().ParseNotification(raw).Return(approved, "ORDER-404", nil)
		orders.EXPECT().GetOrder(ctx, "ORDER-404").Return(order.Order{}, order.ErrNotFound)

		// when
		out := a.HandleInboundResponse(ctx, raw, ModeRedirect)

		// then
		assert.Equal(t, testURLs.Home, out.Location)
	})
}

func TestAdapter_HandleInboundResponse_Notification(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	raw := []byte(`{"order_id":"ORDER-123","result":"approved"}`)
	approved := payment.TransactionResponse{Result: payment.ResultApproved, TransID: "TXN-1"}

	testCases := []struct {
		name string
		mock func(parser *MockParser, processor *MockProcessor, orders *MockOrderGetter)
	}{
		{
			name: "success",
			mock: func(parser *MockParser, processor *MockProcessor, orders *MockOrderGetter) {
				ord := pendingOrder()
				parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
				orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
				processor.EXPECT().Process(ctx, ord, approved).Return(nil)
			},
		},
		{
			name: "decline",
			mock: func(parser *MockParser, processor *MockProcessor, orders *MockOrderGetter) {
				ord := pendingOrder()
				parser.EXPECT().ParseNotification(raw).Return(approved, ord.ID, nil)
				orders.EXPECT().GetOrder(ctx, ord.ID).Return(ord, nil)
				processor.EXPECT().Process(ctx, ord, approved).
					Return(&payment.DeclinedError{Code: "2", Message: "declined"})
			},
		},
		{
			name: "unparseable payload",
			mock: func(parser *MockParser, processor *MockProcessor, orders *MockOrderGetter) {
				parser.EXPECT().ParseNotification(raw).
					Return(payment.TransactionResponse{}, "", errors.New("bad payload"))
			},
		},
	}

	// The gateway must never retry delivery, so every outcome answers a
	// bare 200 with no redirect.
	for _, tc := range testCases {
		t.Run("should answer 200 on "+tc.name, func(t *testing.T) {
			// given
			a, parser, processor, orders := adapter(t)
			tc.mock(parser, processor, orders)

			// when
			out := a.HandleInboundResponse(ctx, raw, ModeNotification)

			// then
			assert.Equal(t, http.StatusOK, out.Status)
			assert.Empty(t, out.Location)
			assert.Empty(t, out.Notice)
		})
	}
}
