package handlers

import (
	"errors"
	"net/http"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase"
	"equine_billing/pkg"
	"equine_billing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// refinedCodes names the failures clients branch on.
var refinedCodes = []struct {
	err  error
	code string
}{
	{usecase.ErrInvoiceFullyPaid, "INVOICE_FULLY_PAID"},
	{usecase.ErrPaymentInProgress, "PAYMENT_IN_PROGRESS"},
	{usecase.ErrNoPaymentMethod, "NO_PAYMENT_METHOD"},
	{usecase.ErrNoTransfers, "NO_PAYOUT_DESTINATION"},
	{usecase.ErrInvoiceHasNoPayers, "INVOICE_HAS_NO_PAYERS"},
	{usecase.ErrNoInvoicesMatched, "NO_INVOICES_MATCHED"},
	{usecase.ErrRequestsDismissed, "REQUESTS_DISMISSED"},
	{usecase.ErrStatusTransition, "STATUS_TRANSITION_NOT_ALLOWED"},
	{usecase.ErrNoCustomer, "NO_BILLING_CUSTOMER"},
	{usecase.ErrNoPayoutAccount, "NO_PAYOUT_ACCOUNT"},
	{usecase.ErrInvalidCard, "INVALID_CARD"},
}

var kindStatus = map[entities.ErrorKind]struct {
	code   string
	status int
}{
	entities.KindInvalidInput:    {"INVALID_REQUEST", http.StatusBadRequest},
	entities.KindNotFound:        {"NOT_FOUND", http.StatusNotFound},
	entities.KindUnauthenticated: {"UNAUTHENTICATED", http.StatusUnauthorized},
	entities.KindUnauthorized:    {"FORBIDDEN", http.StatusForbidden},
	entities.KindInvalidState:    {"INVALID_STATE", http.StatusConflict},
	entities.KindExternalFailure: {"EXTERNAL_FAILURE", http.StatusBadGateway},
}

func mapDomainError(err error) *pkg.AppError {
	var de *entities.DomainError
	if !errors.As(err, &de) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	m, ok := kindStatus[de.Kind]
	if !ok {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	code := m.code
	for _, r := range refinedCodes {
		if errors.Is(err, r.err) {
			code = r.code
			break
		}
	}

	appErr := pkg.NewDomainError(code, de.Message, err, m.status)
	if de.Partial {
		appErr = appErr.WithDetail("partial", true).WithDetail("charge_id", de.ChargeID)
	}
	return appErr
}

func invalidRequest(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	entry := logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"status": appErr.HTTPStatus,
		"code":   appErr.Code,
	})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.WithError(appErr).Error("[http][handler] request failed")
	} else {
		entry.WithError(appErr).Info("[http][handler] request rejected")
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeError(c *gin.Context, err error) {
	abortWithError(c, mapDomainError(err))
}
