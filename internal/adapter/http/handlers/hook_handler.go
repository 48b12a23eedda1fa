package handlers

import (
	"net/http"

	"equine_billing/internal/adapter/http/dto/request"
	"equine_billing/internal/usecase"
	"equine_billing/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HookHandler receives document-store triggers. Every hook answers 202 once
// the side effects ran; failures are reported so the trigger can retry.
type HookHandler struct {
	invoices usecase.IInvoiceUseCase
	requests usecase.IServiceRequestUseCase
	profiles usecase.IBillingProfileUseCase
}

func NewHookHandler(invoices usecase.IInvoiceUseCase, requests usecase.IServiceRequestUseCase, profiles usecase.IBillingProfileUseCase) *HookHandler {
	return &HookHandler{invoices: invoices, requests: requests, profiles: profiles}
}

// InvoiceCreated godoc
// @Summary      Invoice created trigger
// @Tags         hooks
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      202
// @Router       /hooks/invoices/{invoice_id}/created [post]
func (h *HookHandler) InvoiceCreated(c *gin.Context) {
	id := c.Param("invoice_id")
	if err := h.invoices.HandleInvoiceCreated(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).WithField("invoice_id", id).Info("[hook][handler] invoice created handled")
	c.Status(http.StatusAccepted)
}

// InvoiceUpdated godoc
// @Summary      Invoice updated trigger
// @Tags         hooks
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      202
// @Router       /hooks/invoices/{invoice_id}/updated [post]
func (h *HookHandler) InvoiceUpdated(c *gin.Context) {
	if err := h.invoices.HandleInvoiceUpdated(c.Request.Context(), c.Param("invoice_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// ServiceRequestCreated godoc
// @Summary      Service request created trigger
// @Tags         hooks
// @Param        request_id  path  string  true  "Service request ID"
// @Success      202
// @Router       /hooks/service-requests/{request_id}/created [post]
func (h *HookHandler) ServiceRequestCreated(c *gin.Context) {
	id := c.Param("request_id")
	if err := h.requests.HandleServiceRequestCreated(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).WithField("service_request_id", id).Info("[hook][handler] service request created handled")
	c.Status(http.StatusAccepted)
}

// UserDeleted godoc
// @Summary      User deleted trigger
// @Tags         hooks
// @Accept       json
// @Param        body  body  request.UserDeletedRequest  true  "Billing ids of the deleted user"
// @Success      202
// @Router       /hooks/users/deleted [post]
func (h *HookHandler) UserDeleted(c *gin.Context) {
	var req request.UserDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("Invalid request"))
		return
	}
	if err := h.profiles.HandleUserDeleted(c.Request.Context(), req.CustomerID, req.AccountID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
