package routes

import (
	"auto_accessories/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCheckoutRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
		orders.GET("/:id/payments", paymentHandler.ListOrderPayments)
		orders.GET("/:id/payments/:payment_id", paymentHandler.GetOrderPayment)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}
}
