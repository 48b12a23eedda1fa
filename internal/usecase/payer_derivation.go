package usecase

import (
	"equine_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var fullShare = decimal.NewFromInt(100)

// DerivePayer selects the single payer of a hydrated horse: the leaser,
// else a sole owner, else the trainer. A horse with several owners has no
// single payer.
func DerivePayer(h entities.Horse) (entities.Payer, bool) {
	switch {
	case h.Leaser != nil:
		return entities.PayerFromManager(*h.Leaser, fullShare), true
	case len(h.Owners) == 1:
		return entities.PayerFromOwner(h.Owners[0], fullShare), true
	case len(h.Owners) > 1:
		return entities.Payer{}, false
	case h.Trainer != nil:
		return entities.PayerFromManager(*h.Trainer, fullShare), true
	}
	return entities.Payer{}, false
}

// DeriveInvoicePayers lists the payers across hydrated requests, first
// occurrence wins. Co-owned horses contribute every owner at their stored
// percentage.
func DeriveInvoicePayers(requests []entities.ServiceRequest) []entities.Payer {
	var payers []entities.Payer
	seen := map[string]struct{}{}
	add := func(p entities.Payer) {
		if p.UserID == "" {
			return
		}
		if _, ok := seen[p.UserID]; ok {
			return
		}
		seen[p.UserID] = struct{}{}
		payers = append(payers, p)
	}

	for _, req := range requests {
		h := req.Horse
		if h == nil {
			continue
		}
		switch {
		case h.Leaser != nil:
			add(entities.PayerFromManager(*h.Leaser, fullShare))
		case len(h.Owners) > 0:
			for _, o := range h.Owners {
				add(entities.PayerFromOwner(o, o.Percentage))
			}
		case h.Trainer != nil:
			add(entities.PayerFromManager(*h.Trainer, fullShare))
		}
	}
	return payers
}
