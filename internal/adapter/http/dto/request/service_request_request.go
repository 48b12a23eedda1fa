package request

import (
	"errors"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

type ServiceRequestSearchQuery struct {
	HorseID           string   `form:"horse_id"`
	ServiceProviderID string   `form:"service_provider_id"`
	Statuses          []string `form:"status"`
	StartDate         string   `form:"start_date"`
	EndDate           string   `form:"end_date"`
	Cursor            string   `form:"cursor"`
	Limit             int      `form:"limit"`
}

func (q ServiceRequestSearchQuery) ResolveStatuses() ([]entities.ServiceRequestStatus, error) {
	out := make([]entities.ServiceRequestStatus, 0, len(q.Statuses))
	for _, raw := range splitValues(q.Statuses) {
		s := entities.ServiceRequestStatus(raw)
		if !s.Valid() {
			return nil, ErrInvalidStatus
		}
		out = append(out, s)
	}
	return out, nil
}

func (q ServiceRequestSearchQuery) ResolveDates() (time.Time, time.Time, error) {
	return parseRange(q.StartDate, q.EndDate)
}

func (q ServiceRequestSearchQuery) ResolveLimit() int {
	return clampLimit(q.Limit)
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignProviderRequest struct {
	AssignerID string `json:"assigner_id" binding:"required"`
}

type DismissServiceRequestRequest struct {
	ServiceProviderID string `json:"service_provider_id" binding:"required"`
}

type PaymentSubmissionRequest struct {
	AssignerID        string   `json:"assigner_id" binding:"required"`
	ServiceProviderID string   `json:"service_provider_id" binding:"required"`
	RequestIDs        []string `json:"request_ids" binding:"required,min=1"`
}

// PaymentApprovalRequest asks OwnerID to register UserID as payment approver.
// Amount is a decimal string such as "42.50".
type PaymentApprovalRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	OwnerID string `json:"owner_id" binding:"required"`
	Amount  string `json:"amount"`
}

func (r PaymentApprovalRequest) ResolveAmount() (decimal.Decimal, error) {
	if strings.TrimSpace(r.Amount) == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
