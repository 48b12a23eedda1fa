package routes

import (
	"equine_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.PaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.SearchInvoices)
		invoices.POST("/export", invoiceHandler.ExportInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payment-reminders", invoiceHandler.RequestPayment)
		invoices.GET("/:invoice_id/listeners", invoiceHandler.Listeners)
		invoices.GET("/:invoice_id/payment-status", invoiceHandler.PaymentStatus)

		invoices.POST("/:invoice_id/payments", paymentHandler.SubmitPayment)
		invoices.POST("/:invoice_id/mark-paid", paymentHandler.MarkInvoiceAsPaid)
	}
}
