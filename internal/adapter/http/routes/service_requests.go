package routes

import (
	"equine_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests         = "/service-requests"
	PathPaymentApprovalRequests = "/payment-approval-requests"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, h *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.GET("", h.SearchServiceRequests)
		requests.POST("/payment-submission-requests", h.RequestPaymentSubmission)
		requests.GET("/:request_id", h.GetServiceRequest)
		requests.PATCH("/:request_id/status", h.UpdateStatus)
		requests.PUT("/:request_id/assigner", h.AssignProvider)
		requests.POST("/:request_id/dismiss", h.Dismiss)
		requests.GET("/:request_id/listeners", h.Listeners)
	}

	rg.POST(PathPaymentApprovalRequests, h.RequestPaymentApproval)
}
