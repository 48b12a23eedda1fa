package handlers

import (
	"net/http"

	"equine_billing/internal/adapter/http/dto/request"
	"equine_billing/internal/adapter/http/dto/response"
	"equine_billing/internal/usecase"
	"equine_billing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentHandler settles invoices, online or manually.
type PaymentHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewPaymentHandler(uc usecase.ISettlementUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SubmitPayment godoc
// @Summary      Pay a payer's share of an invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        invoice_id  path  string                        true  "Invoice ID"
// @Param        body        body  request.SubmitPaymentRequest  true  "Payer"
// @Success      201  {object}  response.PaymentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/payments [post]
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	var req request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("payer_id is required"))
		return
	}

	log := logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{"invoice_id": invoiceID, "payer_id": req.PayerID})
	log.Info("[payment][handler] submit start")

	created, err := h.usecase.SubmitPayment(c.Request.Context(), usecase.SubmitPaymentCommand{
		InvoiceID:         invoiceID,
		PayerID:           req.PayerID,
		PaymentApproverID: req.PaymentApproverID,
		PaymentSource:     req.PaymentSource,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	log.WithField("payment_id", created.ID).Info("[payment][handler] submit success")

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// MarkInvoiceAsPaid godoc
// @Summary      Record off-platform settlement for every unpaid payer
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        invoice_id  path  string                          true  "Invoice ID"
// @Param        body        body  request.MarkInvoicePaidRequest  true  "Provider"
// @Success      200  {array}  response.PaymentResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/mark-paid [post]
func (h *PaymentHandler) MarkInvoiceAsPaid(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	var req request.MarkInvoicePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("service_provider_id is required"))
		return
	}

	created, err := h.usecase.MarkInvoiceAsPaid(c.Request.Context(), invoiceID, req.ServiceProviderID)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{"invoice_id": invoiceID, "payments": len(created)}).Info("[payment][handler] marked paid")

	c.JSON(http.StatusOK, response.FromPayments(created))
}
