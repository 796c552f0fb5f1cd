package routes

import (
	"upay_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathPayments     = "/payments"
	PathRefunds      = "/refunds"
	PathGatewayCalls = "/gateway-calls"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.UpayPaymentHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/verify", h.VerifyCredentials)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.InitPayment)
		payments.POST("/status", h.GetBulkPaymentStatus)
		payments.GET("/:txn_id/status", h.GetPaymentStatus)
	}

	refunds := rg.Group(PathRefunds)
	{
		refunds.POST("", h.BulkRefund)
	}

	calls := rg.Group(PathGatewayCalls)
	{
		calls.GET("", h.ListGatewayCalls)
		calls.GET("/:id", h.GetGatewayCall)
	}
}
