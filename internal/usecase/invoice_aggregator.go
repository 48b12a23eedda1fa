package usecase

import (
	"context"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/shopspring/decimal"
)

// InvoiceAggregator rolls hydrated requests up into an invoice view.
type InvoiceAggregator struct {
	resolver  *EntityResolver
	approvers interfaces.IPaymentApproverRepository
}

func NewInvoiceAggregator(resolver *EntityResolver, approvers interfaces.IPaymentApproverRepository) *InvoiceAggregator {
	return &InvoiceAggregator{resolver: resolver, approvers: approvers}
}

// Hydrate loads the invoice's requests, recomputes Amount, and derives
// payers and approvers. Requests that cannot be read are skipped. Requests
// for a horse already seen reuse that horse.
func (a *InvoiceAggregator) Hydrate(ctx context.Context, inv entities.Invoice) entities.Invoice {
	s := a.resolver.session()
	anchors := map[string]*horseAnchor{}

	inv.Requests = make([]entities.ServiceRequest, 0, len(inv.RequestIDs))
	for _, id := range inv.RequestIDs {
		req, ok := a.resolver.FetchServiceRequest(ctx, id)
		if !ok {
			logger.FromContext(ctx).WithField("invoice_id", inv.ID).WithField("service_request_id", id).
				Warn("[aggregator] skipping unreadable request")
			continue
		}
		anchor := anchors[req.HorseID]
		req = s.serviceRequest(ctx, req, anchor)
		if anchor == nil && req.HorseID != "" {
			anchors[req.HorseID] = &horseAnchor{horse: req.Horse}
		}
		inv.Requests = append(inv.Requests, req)
	}

	inv.Amount = InvoiceAmount(inv.Requests)
	inv.Payers = DeriveInvoicePayers(inv.Requests)
	inv.PaymentApprovers = a.approversFor(ctx, inv.Payers)
	return inv
}

func InvoiceAmount(requests []entities.ServiceRequest) decimal.Decimal {
	total := decimal.Zero
	for _, r := range requests {
		total = total.Add(r.TotalAmount())
	}
	return total
}

func (a *InvoiceAggregator) approversFor(ctx context.Context, payers []entities.Payer) []entities.PaymentApprover {
	var out []entities.PaymentApprover
	seen := map[string]struct{}{}
	for _, p := range payers {
		list, err := a.approvers.ListByCreatorID(ctx, p.UserID)
		if err != nil {
			logger.FromContext(ctx).WithError(err).WithField("payer_id", p.UserID).Warn("[aggregator] approvers lookup failed")
			continue
		}
		for _, ap := range list {
			if _, ok := seen[ap.UserID]; ok {
				continue
			}
			seen[ap.UserID] = struct{}{}
			out = append(out, ap)
		}
	}
	return out
}

// approvedBy reports whether approverID is registered as an approver by payerID.
func (a *InvoiceAggregator) approvedBy(ctx context.Context, payerID, approverID string) (bool, error) {
	list, err := a.approvers.ListByCreatorID(ctx, payerID)
	if err != nil {
		return false, err
	}
	for _, ap := range list {
		if ap.UserID == approverID {
			return true, nil
		}
	}
	return false, nil
}
