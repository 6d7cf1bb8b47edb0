package handlers

import (
	"errors"
	"io"
	"net/http"

	"paygate/internal/domain/order"
	"paygate/internal/external/acmepay"
	"paygate/internal/webhook"

	"github.com/gin-gonic/gin"
)

// GatewayHandler owns the surfaces the payment gateway talks to: the hosted
// payment hand-off, the browser return, and the server-to-server
// notification webhook.
type GatewayHandler struct {
	ingestor webhook.Ingestor
	client   *acmepay.Client
	orders   webhook.OrderGetter
	authOnly bool
}

func NewGatewayHandler(ingestor webhook.Ingestor, client *acmepay.Client, orders webhook.OrderGetter, authOnly bool) GatewayHandler {
	return GatewayHandler{
		ingestor: ingestor,
		client:   client,
		orders:   orders,
		authOnly: authOnly,
	}
}

type payRequest struct {
	ReturnURL string `json:"return_url" binding:"required"`
	NotifyURL string `json:"notify_url" binding:"required"`
}

// Pay responds with the hosted payment page URL the shopper should be sent
// to.
func (h *GatewayHandler) Pay(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ord, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if !ord.NeedsPayment() {
		c.JSON(http.StatusConflict, gin.H{"message": "order no longer needs payment"})
		return
	}

	payURL, err := h.client.HostedPaymentURL(ord, req.ReturnURL, req.NotifyURL, h.authOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": payURL})
}

// Return handles the shopper coming back from the hosted payment page. The
// outcome is always a redirect; declines carry a customer-facing notice.
func (h *GatewayHandler) Return(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable body"})
		return
	}

	out := h.ingestor.Ingest(c.Request.Context(), raw, webhook.ModeRedirect)
	if out.Notice != "" {
		c.SetCookie("payment_notice", out.Notice, 300, "/", "", false, false)
	}
	c.Redirect(out.Status, out.Location)
}

// Notify handles the gateway's server-to-server notification. The answer is
// always a bare status so the gateway never retries delivery.
func (h *GatewayHandler) Notify(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	out := h.ingestor.Ingest(c.Request.Context(), raw, webhook.ModeNotification)
	c.Status(out.Status)
}

// Transaction looks up a gateway transaction, served from the response cache
// unless refresh=true.
func (h *GatewayHandler) Transaction(c *gin.Context) {
	transID := c.Param("trans_id")
	if transID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing trans_id"})
		return
	}
	refresh := c.Query("refresh") == "true"

	resp, err := h.client.GetTransaction(c.Request.Context(), transID, refresh)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
