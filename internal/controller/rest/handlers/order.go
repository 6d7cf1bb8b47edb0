package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"paygate/internal/domain/capture"
	"paygate/internal/domain/order"
	order_repo "paygate/internal/repo/order"

	"github.com/gin-gonic/gin"
)

// OrderStore is the order access the REST layer needs beyond the domain port.
type OrderStore interface {
	order.Store
	CreateOrder(ctx context.Context, ord order.Order) error
	GetNotes(ctx context.Context, orderID string) ([]order_repo.Note, error)
}

type OrderHandler struct {
	store  OrderStore
	engine *capture.Engine
}

func NewOrderHandler(store OrderStore, engine *capture.Engine) OrderHandler {
	return OrderHandler{store: store, engine: engine}
}

type createOrderRequest struct {
	ID       string  `json:"id" binding:"required"`
	Total    float64 `json:"total" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ord := order.Order{
		ID:       req.ID,
		Status:   order.StatusPending,
		Total:    req.Total,
		Currency: req.Currency,
	}
	if err := h.store.CreateOrder(c.Request.Context(), ord); err != nil {
		if errors.Is(err, order.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	ord, err := h.store.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	notes, err := h.store.GetNotes(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": ord, "notes": notes})
}

type captureRequest struct {
	Amount *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
}

// Capture settles an authorized order, fully or partially. The response
// status is derived from the capture result code, so callers can distinguish
// configuration errors from state errors and gateway declines.
func (h *OrderHandler) Capture(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	// A bare POST with no body means "capture the full remainder".
	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result := h.engine.Capture(c.Request.Context(), orderID, req.Amount)
	c.JSON(result.Code.HTTPStatus(), result)
}
