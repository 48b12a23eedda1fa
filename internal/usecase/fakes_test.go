package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory document store shared by the fake repositories.
type memStore struct {
	mu            sync.Mutex
	users         map[string]entities.User
	horses        map[string]entities.Horse
	owners        map[string][]entities.HorseOwner
	shows         map[string]entities.ServiceShow
	requests      map[string]entities.ServiceRequest
	requestOrder  []string
	invoices      map[string]entities.Invoice
	invoiceOrder  []string
	payments      map[string]entities.Payment
	approvers     map[string][]entities.PaymentApprover
	notifications []entities.Notification
	writes        int
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]entities.User{},
		horses:    map[string]entities.Horse{},
		owners:    map[string][]entities.HorseOwner{},
		shows:     map[string]entities.ServiceShow{},
		requests:  map[string]entities.ServiceRequest{},
		invoices:  map[string]entities.Invoice{},
		payments:  map[string]entities.Payment{},
		approvers: map[string][]entities.PaymentApprover{},
	}
}

func (s *memStore) addUser(u entities.User) { s.users[u.ID] = u }

func (s *memStore) addHorse(h entities.Horse, owners ...entities.HorseOwner) {
	for _, o := range owners {
		o.HorseID = h.ID
		h.OwnerIDs = append(h.OwnerIDs, o.UserID)
		s.owners[h.ID] = append(s.owners[h.ID], o)
	}
	s.horses[h.ID] = h
}

func (s *memStore) addRequest(r entities.ServiceRequest) {
	s.requests[r.ID] = r
	s.requestOrder = append(s.requestOrder, r.ID)
}

func (s *memStore) addInvoice(inv entities.Invoice) {
	s.invoices[inv.ID] = inv
	s.invoiceOrder = append(s.invoiceOrder, inv.ID)
}

func afterIndex(order []string, afterID string) int {
	if afterID == "" {
		return 0
	}
	return slices.Index(order, afterID) + 1
}

type memUsers struct{ *memStore }

func (r memUsers) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r memUsers) UpdateCustomer(_ context.Context, userID string, c *entities.BillingCustomer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[userID]
	if u.HorseManager == nil {
		return interfaces.ErrConditionFailed
	}
	hm := *u.HorseManager
	hm.Customer = c
	u.HorseManager = &hm
	r.users[userID] = u
	r.writes++
	return nil
}

type memHorses struct{ *memStore }

func (r memHorses) GetByID(_ context.Context, id string) (entities.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.horses[id], nil
}

type memOwners struct{ *memStore }

func (r memOwners) ListByHorseID(_ context.Context, horseID string) ([]entities.HorseOwner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.owners[horseID]), nil
}

type memShows struct{ *memStore }

func (r memShows) GetByID(_ context.Context, id string) (entities.ServiceShow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shows[id], nil
}

type memRequests struct{ *memStore }

func (r memRequests) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[id], nil
}

func (r memRequests) ListPage(_ context.Context, q interfaces.ServiceRequestQuery, afterID string, limit int) ([]entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.ServiceRequest
	for _, id := range r.requestOrder[afterIndex(r.requestOrder, afterID):] {
		req := r.requests[id]
		if q.HorseID != "" && req.HorseID != q.HorseID {
			continue
		}
		out = append(out, req)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r memRequests) UpdateStatus(_ context.Context, id string, from, to entities.ServiceRequestStatus, at time.Time) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != from {
		return entities.ServiceRequest{}, interfaces.ErrConditionFailed
	}
	req.Status = to
	req.UpdatedAt = at
	r.requests[id] = req
	r.writes++
	return req, nil
}

func (r memRequests) UpdateAssigner(_ context.Context, id, assignerID string, at time.Time) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.requests[id]
	req.AssignerID = assignerID
	req.UpdatedAt = at
	r.requests[id] = req
	r.writes++
	return req, nil
}

func (r memRequests) AddDismissedBy(_ context.Context, id, providerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.requests[id]
	req.DismissedBy = append(req.DismissedBy, providerID)
	req.UpdatedAt = at
	r.requests[id] = req
	r.writes++
	return nil
}

func (r memRequests) UpdateListeners(_ context.Context, id string, listeners []entities.ListenerUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := r.requests[id]
	req.ListenerUsers = listeners
	r.requests[id] = req
	return nil
}

func (r memRequests) MarkInvoiced(_ context.Context, ids []string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		req, ok := r.requests[id]
		if !ok {
			continue
		}
		req.Status = entities.ServiceRequestStatusInvoiced
		req.UpdatedAt = at
		r.requests[id] = req
		r.writes++
	}
	return nil
}

type memInvoices struct{ *memStore }

func (r memInvoices) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoices[id], nil
}

func (r memInvoices) ListPage(_ context.Context, q interfaces.InvoiceQuery, afterID string, limit int) ([]entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Invoice
	for _, id := range r.invoiceOrder[afterIndex(r.invoiceOrder, afterID):] {
		inv := r.invoices[id]
		if q.Status != "" && inv.Status != q.Status {
			continue
		}
		if !q.CreatedFrom.IsZero() && inv.CreatedAt.Before(q.CreatedFrom) {
			continue
		}
		if !q.CreatedTo.IsZero() && inv.CreatedAt.After(q.CreatedTo) {
			continue
		}
		out = append(out, inv)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r memInvoices) UpdateListeners(_ context.Context, id string, listeners []entities.ListenerUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv := r.invoices[id]
	inv.ListenerUsers = listeners
	r.invoices[id] = inv
	return nil
}

func (r memInvoices) MarkFullPaid(_ context.Context, invoiceID string, requestIDs []string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok || inv.Status == entities.InvoiceStatusFullPaid {
		return interfaces.ErrConditionFailed
	}
	for _, id := range requestIDs {
		req := r.requests[id]
		req.Status = entities.ServiceRequestStatusPaid
		r.requests[id] = req
	}
	inv.Status = entities.InvoiceStatusFullPaid
	inv.PaidAt = &paidAt
	r.invoices[invoiceID] = inv
	r.writes++
	return nil
}

type memPayments struct{ *memStore }

func (r memPayments) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.Payment{}, interfaces.ErrAlreadyExists
	}
	r.payments[p.ID] = p
	r.writes++
	return p, nil
}

func (r memPayments) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payments[id], nil
}

func (r memPayments) ListByIDs(_ context.Context, ids []string) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Payment
	for _, id := range ids {
		if p, ok := r.payments[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPayments) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Payment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memApprovers struct{ *memStore }

func (r memApprovers) ListByCreatorID(_ context.Context, creatorID string) ([]entities.PaymentApprover, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.approvers[creatorID]), nil
}

type memNotifications struct{ *memStore }

func (r memNotifications) Create(_ context.Context, n entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
	return nil
}

func (s *memStore) resolver() *EntityResolver {
	return NewEntityResolver(memUsers{s}, memHorses{s}, memOwners{s}, memShows{s}, memRequests{s})
}

func (s *memStore) aggregator() *InvoiceAggregator {
	return NewInvoiceAggregator(s.resolver(), memApprovers{s})
}

type pushCall struct {
	receivers []string
	title     string
	body      string
}

type recordingNotifier struct {
	mu      sync.Mutex
	pushes  []pushCall
	records []pushCall
}

func (n *recordingNotifier) Push(_ context.Context, receiverIDs []string, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, pushCall{receivers: slices.Clone(receiverIDs), title: title, body: body})
}

func (n *recordingNotifier) Record(_ context.Context, _ entities.NotificationCreator, receiverIDs []string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.records = append(n.records, pushCall{receivers: slices.Clone(receiverIDs), body: message})
}

func manager(id, name string) entities.User {
	return entities.User{
		ID:           id,
		Type:         entities.UserTypeHorseManager,
		Token:        "tok-" + id,
		HorseManager: &entities.HorseManager{UserID: id, Name: name},
	}
}

func payingManager(id, name string) entities.User {
	u := manager(id, name)
	u.HorseManager.Customer = &entities.BillingCustomer{ID: "cus_" + id, DefaultSource: "card_" + id}
	return u
}

func provider(id, name string) entities.User {
	return entities.User{
		ID:              id,
		Type:            entities.UserTypeServiceProvider,
		Token:           "tok-" + id,
		ServiceProvider: &entities.ServiceProvider{UserID: id, Name: name, Account: &entities.PayoutAccount{ID: "acct_" + id}},
	}
}

func owner(userID, name string, pct int64) entities.HorseOwner {
	return entities.HorseOwner{ID: "own-" + userID, UserID: userID, Name: name, Percentage: decimal.NewFromInt(pct)}
}

func line(rate string, qty int) entities.ServiceLine {
	return entities.ServiceLine{Name: "service", Rate: decimal.RequireFromString(rate), Quantity: qty}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
