package routes

import (
	"trilha_vertical/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathUsers    = "/users"
	PathCoupons  = "/coupons"
	PathWebhooks = "/webhooks"
)

func addBookingRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, couponHandler *handlers.CouponHandler, webhookHandler *handlers.WebhookHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/crypto/poll", orderHandler.PollCryptoPayment)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id/orders", orderHandler.GetUserOrders)
	}

	coupons := rg.Group(PathCoupons)
	{
		coupons.POST("", couponHandler.CreateCoupon)
		coupons.GET("/:code", couponHandler.GetCoupon)
		coupons.POST("/validate", couponHandler.ValidateCoupon)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payment", webhookHandler.PaymentWebhook)
	}
}
