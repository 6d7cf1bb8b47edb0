package payment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRegistry_ApprovedMessage(t *testing.T) {
	t.Parallel()

	reg := NewMessageRegistry()

	testCases := []struct {
		name     string
		resp     TransactionResponse
		expected string
	}{
		{
			name: "credit card with account and transaction id",
			resp: TransactionResponse{
				PaymentType:  TypeCreditCard,
				AccountLast4: "1111",
				TransID:      "TXN-1",
			},
			expected: "Credit Card Transaction Approved (ending in 1111) (Transaction ID TXN-1)",
		},
		{
			name:     "echeck without optional fields",
			resp:     TransactionResponse{PaymentType: TypeECheck},
			expected: "eCheck Transaction Approved",
		},
		{
			name:     "unknown type falls back to generic formatter",
			resp:     TransactionResponse{PaymentType: Type("wallet"), TransID: "TXN-2"},
			expected: "Transaction Approved (Transaction ID TXN-2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reg.ApprovedMessage(tc.resp))
		})
	}
}

func TestMessageRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := NewMessageRegistry()
	reg.Register(TypeCreditCard, func(r TransactionResponse) string {
		return fmt.Sprintf("Custom approval for %s", r.TransID)
	})

	got := reg.ApprovedMessage(TransactionResponse{PaymentType: TypeCreditCard, TransID: "TXN-9"})

	assert.Equal(t, "Custom approval for TXN-9", got)
}
