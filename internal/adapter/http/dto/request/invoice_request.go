package request

import (
	"errors"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	dateLayout       = "2006-01-02"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// InvoiceSearchQuery is bound from the query string of GET /invoices.
type InvoiceSearchQuery struct {
	UserID   string   `form:"user_id" binding:"required"`
	Statuses []string `form:"status"`
	Cursor   string   `form:"cursor"`
	Limit    int      `form:"limit"`
}

func (q InvoiceSearchQuery) ResolveStatuses() ([]entities.InvoiceStatus, error) {
	out := make([]entities.InvoiceStatus, 0, len(q.Statuses))
	for _, raw := range splitValues(q.Statuses) {
		s := entities.InvoiceStatus(raw)
		if !s.Valid() {
			return nil, ErrInvalidStatus
		}
		out = append(out, s)
	}
	return out, nil
}

func (q InvoiceSearchQuery) ResolveLimit() int {
	return clampLimit(q.Limit)
}

type ExportInvoicesRequest struct {
	UserID             string   `json:"user_id" binding:"required"`
	Status             string   `json:"status"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	ServiceProviderIDs []string `json:"service_provider_ids"`
	HorseManagerIDs    []string `json:"horse_manager_ids"`
	HorseIDs           []string `json:"horse_ids"`
}

func (r ExportInvoicesRequest) ResolveStatus() (entities.InvoiceStatus, error) {
	if strings.TrimSpace(r.Status) == "" {
		return "", nil
	}
	s := entities.InvoiceStatus(strings.TrimSpace(r.Status))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ResolveDates parses the optional range. The end date covers the whole day.
func (r ExportInvoicesRequest) ResolveDates() (time.Time, time.Time, error) {
	return parseRange(r.StartDate, r.EndDate)
}

type SubmitPaymentRequest struct {
	PayerID           string `json:"payer_id" binding:"required"`
	PaymentApproverID string `json:"payment_approver_id"`
	PaymentSource     string `json:"payment_source"`
}

type MarkInvoicePaidRequest struct {
	ServiceProviderID string `json:"service_provider_id" binding:"required"`
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageLimit
	case limit > MaxPageLimit:
		return MaxPageLimit
	}
	return limit
}

// splitValues accepts both repeated params and comma separated lists.
func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if s := strings.TrimSpace(start); s != "" {
		if from, err = time.Parse(dateLayout, s); err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
	}
	if s := strings.TrimSpace(end); s != "" {
		if to, err = time.Parse(dateLayout, s); err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
