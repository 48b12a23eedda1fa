package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"equine_billing/internal/adapter/http/handlers/mocks"
	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockISettlementUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.POST("/v1/invoices/:invoice_id/payments", h.SubmitPayment)
	r.POST("/v1/invoices/:invoice_id/mark-paid", h.MarkInvoiceAsPaid)
	return r, uc
}

func TestPaymentHandler_SubmitPayment(t *testing.T) {
	t.Run("missing payer", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().SubmitPayment(gomock.Any(), usecase.SubmitPaymentCommand{InvoiceID: "inv-1", PayerID: "m1"}).
			Return(entities.Payment{}, entities.PartialFailure("Payment was charged but a payout failed", "ch_1", errors.New("transfer failed")))

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"payer_id":"m1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["partial"] != true || details["charge_id"] != "ch_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("one-off source is passed through", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().SubmitPayment(gomock.Any(), usecase.SubmitPaymentCommand{InvoiceID: "inv-1", PayerID: "m1", PaymentSource: "tok_applepay"}).
			Return(entities.Payment{ID: "pay-1", InvoiceID: "inv-1", PayerID: "m1", ChargeID: "ch_1"}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"payer_id":"m1","payment_source":"tok_applepay"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("success with approver", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().SubmitPayment(gomock.Any(), usecase.SubmitPaymentCommand{InvoiceID: "inv-1", PayerID: "m1", PaymentApproverID: "m3"}).
			Return(entities.Payment{ID: "pay-1", InvoiceID: "inv-1", PayerID: "m1", ChargeID: "ch_1", Amount: decimal.RequireFromString("94.5")}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"payer_id":"m1","payment_approver_id":"m3"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "pay-1" || body["amount"] != "94.5" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_MarkInvoiceAsPaid(t *testing.T) {
	t.Run("not the provider", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().MarkInvoiceAsPaid(gomock.Any(), "inv-1", "p2").Return(nil, entities.Unauthorized("You are not authorized to mark invoice as paid."))

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/mark-paid", `{"service_provider_id":"p2"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().MarkInvoiceAsPaid(gomock.Any(), "inv-1", "p1").Return([]entities.Payment{
			{ID: "pay-1", PayerID: "m1", IsPaidOutsideApp: true},
			{ID: "pay-2", PayerID: "m2", IsPaidOutsideApp: true},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/mark-paid", `{"service_provider_id":"p1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"is_paid_outside_app":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
