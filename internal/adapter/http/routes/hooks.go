package routes

import (
	"equine_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathHooks = "/hooks"

// addHookRoutes exposes the document-store triggers.
func addHookRoutes(rg *gin.RouterGroup, h *handlers.HookHandler) {
	hooks := rg.Group(PathHooks)
	{
		hooks.POST("/invoices/:invoice_id/created", h.InvoiceCreated)
		hooks.POST("/invoices/:invoice_id/updated", h.InvoiceUpdated)
		hooks.POST("/service-requests/:request_id/created", h.ServiceRequestCreated)
		hooks.POST("/users/deleted", h.UserDeleted)
	}
}
