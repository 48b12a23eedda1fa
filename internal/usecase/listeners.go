package usecase

import "equine_billing/internal/domain/entities"

type listenerSet struct {
	out  []entities.ListenerUser
	seen map[entities.ListenerUser]struct{}
}

func (s *listenerSet) add(userID string, t entities.UserType) {
	if userID == "" {
		return
	}
	l := entities.ListenerUser{UserID: userID, UserType: t}
	if s.seen == nil {
		s.seen = map[entities.ListenerUser]struct{}{}
	}
	if _, ok := s.seen[l]; ok {
		return
	}
	s.seen[l] = struct{}{}
	s.out = append(s.out, l)
}

// ServiceRequestListeners lists who follows a request: its providers, then
// the horse's leaser, else every co-owner, else the trainer.
func ServiceRequestListeners(req entities.ServiceRequest) []entities.ListenerUser {
	var s listenerSet
	s.add(req.ServiceProviderID, entities.UserTypeServiceProvider)
	s.add(req.AssignerID, entities.UserTypeServiceProvider)
	h := req.Horse
	if h == nil {
		return s.out
	}
	switch {
	case h.LeaserID != "":
		s.add(h.LeaserID, entities.UserTypeHorseManager)
	case len(h.OwnerIDs) > 0:
		for _, id := range h.OwnerIDs {
			s.add(id, entities.UserTypeHorseManager)
		}
	default:
		s.add(h.TrainerID, entities.UserTypeHorseManager)
	}
	return s.out
}

// InvoiceListeners lists who follows a hydrated invoice: request providers,
// then payers, then payment approvers.
func InvoiceListeners(inv entities.Invoice) []entities.ListenerUser {
	var s listenerSet
	for _, r := range inv.Requests {
		s.add(r.ServiceProviderID, entities.UserTypeServiceProvider)
		s.add(r.AssignerID, entities.UserTypeServiceProvider)
	}
	for _, p := range inv.Payers {
		s.add(p.UserID, entities.UserTypeHorseManager)
	}
	for _, a := range inv.PaymentApprovers {
		s.add(a.UserID, entities.UserTypeHorseManager)
	}
	return s.out
}
