package rest

import (
	"paygate/internal/controller/rest/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	order   handlers.OrderHandler
	gateway handlers.GatewayHandler
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/orders", r.order.Create)
	engine.GET("/orders/:order_id", r.order.Get)
	engine.POST("/orders/:order_id/capture", r.order.Capture)
	engine.POST("/orders/:order_id/pay", r.gateway.Pay)

	engine.Any("/gateway/return", r.gateway.Return)
	engine.POST("/gateway/notify", r.gateway.Notify)
	engine.GET("/gateway/transactions/:trans_id", r.gateway.Transaction)
}

func NewRouter(order handlers.OrderHandler, gateway handlers.GatewayHandler) *Router {
	return &Router{
		order:   order,
		gateway: gateway,
	}
}
