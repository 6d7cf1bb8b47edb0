package order_repo

import (
	"time"

	"paygate/internal/domain/order"
)

type orderRow struct {
	ID                  string
	Status              string
	Total               float64
	Currency            string
	StockReduced        bool
	TransID             *string
	TransDate           *time.Time
	AuthorizationAmount float64
	CaptureTotal        float64
	ChargeCaptured      string
	CaptureTransID      *string
	AuthCanBeCaptured   bool
	PaidAt              *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (m orderRow) toDomain() (order.Order, error) {
	status, err := order.NewStatus(m.Status)
	if err != nil {
		return order.Order{}, err
	}

	meta := order.PaymentMetadata{
		AuthorizationAmount: m.AuthorizationAmount,
		CaptureTotal:        m.CaptureTotal,
		ChargeCaptured:      order.ChargeCaptured(m.ChargeCaptured),
		AuthCanBeCaptured:   m.AuthCanBeCaptured,
	}
	if m.TransID != nil {
		meta.TransID = *m.TransID
	}
	if m.TransDate != nil {
		meta.TransDate = *m.TransDate
	}
	if m.CaptureTransID != nil {
		meta.CaptureTransID = *m.CaptureTransID
	}

	return order.Order{
		ID:           m.ID,
		Status:       status,
		Total:        m.Total,
		Currency:     m.Currency,
		StockReduced: m.StockReduced,
		Payment:      meta,
		PaidAt:       m.PaidAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
