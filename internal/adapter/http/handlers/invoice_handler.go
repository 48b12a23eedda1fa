package handlers

import (
	"net/http"

	"equine_billing/internal/adapter/http/dto/request"
	"equine_billing/internal/adapter/http/dto/response"
	"equine_billing/internal/usecase"
	"equine_billing/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoice reads, exports and reminders.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GetInvoice godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SearchInvoices godoc
// @Summary      Search invoices visible to a user
// @Tags         invoices
// @Produce      json
// @Param        user_id  query  string  true   "User ID"
// @Param        status   query  string  false  "Comma separated statuses"
// @Param        cursor   query  string  false  "Cursor from the previous page"
// @Param        limit    query  int     false  "Page size"
// @Success      200  {object}  response.PageResponse[response.InvoiceResponse]
// @Router       /invoices [get]
func (h *InvoiceHandler) SearchInvoices(c *gin.Context) {
	var q request.InvoiceSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, invalidRequest("user_id is required"))
		return
	}
	statuses, err := q.ResolveStatuses()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}

	page, err := h.usecase.SearchInvoices(c.Request.Context(), usecase.InvoiceSearch{
		UserID:   q.UserID,
		Statuses: statuses,
		Cursor:   q.Cursor,
		Limit:    q.ResolveLimit(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromInvoice))
}

// ExportInvoices godoc
// @Summary      Export invoices as CSV and email them to the user
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  request.ExportInvoicesRequest  true  "Filters"
// @Success      200  {object}  response.InvoiceExportResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/export [post]
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	var req request.ExportInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("Invalid request"))
		return
	}
	status, err := req.ResolveStatus()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}
	from, to, err := req.ResolveDates()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}

	out, err := h.usecase.ExportInvoices(c.Request.Context(), usecase.InvoiceExportFilter{
		UserID:             req.UserID,
		Status:             status,
		StartDate:          from,
		EndDate:            to,
		ServiceProviderIDs: req.ServiceProviderIDs,
		HorseManagerIDs:    req.HorseManagerIDs,
		HorseIDs:           req.HorseIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.InvoiceExportResponse{FileName: out.FileName, Count: out.Count, URL: out.URL, Emailed: out.Emailed})
}

// RequestPayment godoc
// @Summary      Remind every payer that the invoice is outstanding
// @Tags         invoices
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/payment-reminders [post]
func (h *InvoiceHandler) RequestPayment(c *gin.Context) {
	id := c.Param("invoice_id")
	if err := h.usecase.RequestPayment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).WithField("invoice_id", id).Info("[invoice][handler] payment reminder sent")
	c.Status(http.StatusNoContent)
}

// Listeners godoc
// @Summary      Users listening to invoice changes
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {array}  response.ListenerResponse
// @Router       /invoices/{invoice_id}/listeners [get]
func (h *InvoiceHandler) Listeners(c *gin.Context) {
	ls, err := h.usecase.Listeners(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListeners(ls))
}

// PaymentStatus godoc
// @Summary      Settlement progress of an invoice
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {object}  response.PaymentStatusResponse
// @Router       /invoices/{invoice_id}/payment-status [get]
func (h *InvoiceHandler) PaymentStatus(c *gin.Context) {
	id := c.Param("invoice_id")
	progress, err := h.usecase.PaymentStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PaymentStatusResponse{InvoiceID: id, Status: string(progress)})
}

