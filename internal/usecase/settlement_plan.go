package usecase

import (
	"context"

	"equine_billing/internal/domain/entities"
	"equine_billing/pkg/logger"

	"github.com/shopspring/decimal"
)

// transferPlan accumulates per-destination payouts in cents, keeping first-seen order.
type transferPlan struct {
	transfers []entities.Transfer
	index     map[string]int
}

func (p *transferPlan) add(userID, destination string, minor int64) {
	if destination == "" || minor <= 0 {
		return
	}
	if p.index == nil {
		p.index = map[string]int{}
	}
	if i, ok := p.index[destination]; ok {
		p.transfers[i].AmountMinor += minor
		return
	}
	p.index[destination] = len(p.transfers)
	p.transfers = append(p.transfers, entities.Transfer{UserID: userID, Destination: destination, AmountMinor: minor})
}

func (p *transferPlan) total() int64 {
	var sum int64
	for _, t := range p.transfers {
		sum += t.AmountMinor
	}
	return sum
}

// planTransfers computes the payouts owed for payer's share of a hydrated invoice.
//
// Each request's amount goes to its payout provider, scaled by the payer's
// stake when the payer co-owns the request's horse. The payout account is
// read fresh. The whole invoice tip is split evenly across requests and
// credited to each request's original provider.
func (u *SettlementUseCase) planTransfers(ctx context.Context, inv entities.Invoice, payer entities.Payer) []entities.Transfer {
	log := logger.FromContext(ctx).WithField("invoice_id", inv.ID).WithField("payer_id", payer.UserID)
	var plan transferPlan
	accounts := map[string]string{}

	for _, req := range inv.Requests {
		h := req.Horse
		if h == nil {
			log.WithField("service_request_id", req.ID).Warn("[settlement] request has no horse, skipping")
			continue
		}

		amount := req.TotalAmount()
		if h.LeaserID == "" && h.HasOwnerID(payer.UserID) && len(h.Owners) > 0 {
			owner, ok := h.Owner(payer.UserID)
			if !ok {
				log.WithField("service_request_id", req.ID).Warn("[settlement] payer owner record missing, skipping")
				continue
			}
			amount = entities.Share(amount, owner.Percentage)
		}

		provider := req.PayoutProvider()
		if provider == nil {
			log.WithField("service_request_id", req.ID).Warn("[settlement] request has no provider, skipping")
			continue
		}
		destination := u.currentPayoutAccount(ctx, provider.UserID, accounts)
		if destination == "" {
			log.WithField("service_request_id", req.ID).WithField("provider_id", provider.UserID).
				Warn("[settlement] provider has no payout account, skipping")
			continue
		}
		plan.add(provider.UserID, destination, entities.ToMinorUnits(amount))
	}

	if inv.Tip.IsPositive() && len(inv.Requests) > 0 {
		perRequest := entities.ToMinorUnits(inv.Tip.Div(decimal.NewFromInt(int64(len(inv.Requests)))))
		for _, req := range inv.Requests {
			if req.ServiceProvider == nil {
				continue
			}
			destination := u.currentPayoutAccount(ctx, req.ServiceProvider.UserID, accounts)
			plan.add(req.ServiceProvider.UserID, destination, perRequest)
		}
	}

	return plan.transfers
}

func (u *SettlementUseCase) currentPayoutAccount(ctx context.Context, providerID string, cache map[string]string) string {
	if acct, ok := cache[providerID]; ok {
		return acct
	}
	acct := ""
	if usr, ok := u.resolver.FetchUser(ctx, providerID); ok {
		acct = usr.ServiceProvider.PayoutAccountID()
	}
	cache[providerID] = acct
	return acct
}

// payerShares returns the payer's share of the invoice amount and tip, both
// grossed up by the application fee.
func payerShares(inv entities.Invoice, percentage, feePercent decimal.Decimal) (amount, tip decimal.Decimal) {
	amount = entities.Share(entities.WithApplicationFee(inv.Amount, feePercent), percentage)
	tip = entities.Share(entities.WithApplicationFee(inv.Tip, feePercent), percentage)
	return amount, tip
}
