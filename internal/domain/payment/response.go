package payment

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Result is the gateway's classification of a transaction.
type Result string

const (
	ResultApproved Result = "approved"
	ResultHeld     Result = "held"
	ResultDeclined Result = "declined"
)

// Type tags the payment method used for a transaction.
type Type string

const (
	TypeCreditCard Type = "credit-card"
	TypeECheck     Type = "echeck"
	TypeOther      Type = "other"
)

// TransactionResponse is an immutable value object built once per upstream
// call or notification delivery and discarded after processing.
type TransactionResponse struct {
	Result        Result
	StatusCode    string
	StatusMessage string
	// UserMessage is an optional gateway-supplied customer-facing message.
	UserMessage string
	TransID     string
	PaymentType Type
	// AuthOnly marks a response that reserved funds without settling them.
	AuthOnly bool
	// AccountLast4 echoes the masked account/card digits, when present.
	AccountLast4 string
	Raw          json.RawMessage
}

func (r TransactionResponse) Approved() bool { return r.Result == ResultApproved }
func (r TransactionResponse) Held() bool     { return r.Result == ResultHeld }
func (r TransactionResponse) Declined() bool { return r.Result == ResultDeclined }

// MessageFormatter renders the order-note text for an approved transaction.
type MessageFormatter func(r TransactionResponse) string

// MessageRegistry maps payment types to approved-message formatters. The
// mapping is resolved at configuration time; unknown types fall back to the
// TypeOther formatter.
type MessageRegistry struct {
	mu         sync.RWMutex
	formatters map[Type]MessageFormatter
}

// NewMessageRegistry creates a registry with default formatters for every
// built-in payment type.
func NewMessageRegistry() *MessageRegistry {
	return &MessageRegistry{
		formatters: map[Type]MessageFormatter{
			TypeCreditCard: creditCardApprovedMessage,
			TypeECheck:     echeckApprovedMessage,
			TypeOther:      genericApprovedMessage,
		},
	}
}

// Register installs f for payment type t, replacing any existing formatter.
func (reg *MessageRegistry) Register(t Type, f MessageFormatter) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.formatters[t] = f
}

// ApprovedMessage renders the approved-transaction message for r.
func (reg *MessageRegistry) ApprovedMessage(r TransactionResponse) string {
	reg.mu.RLock()
	f, ok := reg.formatters[r.PaymentType]
	if !ok {
		f = reg.formatters[TypeOther]
	}
	reg.mu.RUnlock()
	return f(r)
}

func creditCardApprovedMessage(r TransactionResponse) string {
	msg := "Credit Card Transaction Approved"
	if r.AccountLast4 != "" {
		msg = fmt.Sprintf("%s (ending in %s)", msg, r.AccountLast4)
	}
	if r.TransID != "" {
		msg = fmt.Sprintf("%s (Transaction ID %s)", msg, r.TransID)
	}
	return msg
}

func echeckApprovedMessage(r TransactionResponse) string {
	msg := "eCheck Transaction Approved"
	if r.AccountLast4 != "" {
		msg = fmt.Sprintf("%s (account ending in %s)", msg, r.AccountLast4)
	}
	if r.TransID != "" {
		msg = fmt.Sprintf("%s (Transaction ID %s)", msg, r.TransID)
	}
	return msg
}

func genericApprovedMessage(r TransactionResponse) string {
	msg := "Transaction Approved"
	if r.TransID != "" {
		msg = fmt.Sprintf("%s (Transaction ID %s)", msg, r.TransID)
	}
	return msg
}
