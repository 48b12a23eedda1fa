package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/shopspring/decimal"
)

const DefaultServiceRequestLimit = 20

var (
	ErrInvalidServiceRequestID = errors.New("invalid service_request_id")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrStatusTransition        = errors.New("status transition not allowed")
	ErrRequestsDismissed       = errors.New("requests dismissed by provider")
)

type ServiceRequestSearch struct {
	HorseID           string
	ServiceProviderID string
	Statuses          []entities.ServiceRequestStatus
	StartDate         time.Time
	EndDate           time.Time
	Cursor            string
	Limit             int
}

// IServiceRequestUseCase covers request reads, status changes and the
// notifications around them.
type IServiceRequestUseCase interface {
	GetServiceRequest(ctx context.Context, id string) (entities.ServiceRequest, error)
	SearchServiceRequests(ctx context.Context, q ServiceRequestSearch) (entities.Page[entities.ServiceRequest], error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceRequestStatus) (entities.ServiceRequest, error)
	AssignProvider(ctx context.Context, id, assignerID string) (entities.ServiceRequest, error)
	Dismiss(ctx context.Context, id, serviceProviderID string) error
	Listeners(ctx context.Context, id string) ([]entities.ListenerUser, error)
	HandleServiceRequestCreated(ctx context.Context, id string) error
	RequestPaymentSubmission(ctx context.Context, assignerID, serviceProviderID string, requestIDs []string) error
	RequestPaymentApproval(ctx context.Context, userID, ownerID string, amount decimal.Decimal) error
}

type ServiceRequestUseCase struct {
	requests interfaces.IServiceRequestRepository
	resolver *EntityResolver
	notifier INotifier
	now      func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(requests interfaces.IServiceRequestRepository, resolver *EntityResolver, notifier INotifier) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{requests: requests, resolver: resolver, notifier: notifier, now: time.Now}
}

func (u *ServiceRequestUseCase) GetServiceRequest(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid service request id", ErrInvalidServiceRequestID)
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, entities.ExternalFailure("Could not read service request", err)
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, entities.NotFound("No service request exists")
	}
	return u.resolver.HydrateServiceRequest(ctx, req), nil
}

// SearchServiceRequests pages through requests newest first. Horse searches
// hide custom requests; provider searches keep requests the provider holds
// or was assigned and has not dismissed.
func (u *ServiceRequestUseCase) SearchServiceRequests(ctx context.Context, q ServiceRequestSearch) (entities.Page[entities.ServiceRequest], error) {
	limit := clampLimit(q.Limit, DefaultServiceRequestLimit)
	fetch := queryLimit(limit)
	query := interfaces.ServiceRequestQuery{HorseID: strings.TrimSpace(q.HorseID), RequestFrom: q.StartDate, RequestTo: q.EndDate}

	var out []entities.ServiceRequest
	after := strings.TrimSpace(q.Cursor)
	for {
		batch, err := u.requests.ListPage(ctx, query, after, fetch)
		if err != nil {
			return entities.Page[entities.ServiceRequest]{}, entities.ExternalFailure("Could not search service requests", err)
		}
		for _, req := range batch {
			after = req.ID
			if !requestMatches(req, q) {
				continue
			}
			out = append(out, u.resolver.HydrateServiceRequest(ctx, req))
			if len(out) == limit {
				return entities.Page[entities.ServiceRequest]{Items: out, NextCursor: req.ID}, nil
			}
		}
		if len(batch) < fetch {
			return entities.Page[entities.ServiceRequest]{Items: out}, nil
		}
	}
}

func requestMatches(req entities.ServiceRequest, q ServiceRequestSearch) bool {
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, req.Status) {
		return false
	}
	if q.HorseID != "" && req.IsCustomRequest {
		return false
	}
	if id := q.ServiceProviderID; id != "" {
		if req.IsDismissedBy(id) {
			return false
		}
		if id != req.AssignerID && id != req.ServiceProviderID {
			return false
		}
	}
	return true
}

// UpdateStatus applies a forward status change. Paid is reserved for settlement.
func (u *ServiceRequestUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceRequestStatus) (entities.ServiceRequest, error) {
	log := logger.FromContext(ctx).WithField("service_request_id", id).WithField("status", status)
	if !status.Valid() || status == entities.ServiceRequestStatusPaid {
		return entities.ServiceRequest{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid status", ErrInvalidStatus)
	}

	current, err := u.requests.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.ServiceRequest{}, entities.ExternalFailure("Could not read service request", err)
	}
	if current.ID == "" {
		return entities.ServiceRequest{}, entities.NotFound("No service request exists")
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.ServiceRequest{}, entities.InvalidState(
			fmt.Sprintf("A %s request cannot become %s", current.Status, status), ErrStatusTransition)
	}

	updated, err := u.requests.UpdateStatus(ctx, current.ID, current.Status, status, u.now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ServiceRequest{}, entities.InvalidState("The request changed concurrently, reload and retry", ErrStatusTransition)
	}
	if err != nil {
		return entities.ServiceRequest{}, entities.ExternalFailure("Could not update service request", err)
	}
	log.Info("[service_request] status updated")

	updated = u.resolver.HydrateServiceRequest(ctx, updated)
	if p, c := updated.ServiceProvider, updated.Creator; p != nil && c != nil {
		creator := providerCreator(p)
		switch status {
		case entities.ServiceRequestStatusDeclined:
			msg := fmt.Sprintf("%s has declined your request from %s for %s", p.Name, c.Name, updated.HorseBarnName)
			u.notifier.Push(ctx, []string{updated.CreatorID}, "Declined Service Request", msg)
			u.notifier.Record(ctx, creator, []string{updated.CreatorID}, msg)
		case entities.ServiceRequestStatusCompleted:
			msg := fmt.Sprintf("%s has completed request from %s for %s", p.Name, c.Name, updated.HorseBarnName)
			u.notifier.Push(ctx, []string{updated.CreatorID}, "Completed Service Request", msg)
			u.notifier.Record(ctx, creator, []string{updated.CreatorID}, msg)
		}
	}
	u.storeListeners(ctx, updated)
	return updated, nil
}

// AssignProvider reassigns a request to another provider, who then receives its payout.
func (u *ServiceRequestUseCase) AssignProvider(ctx context.Context, id, assignerID string) (entities.ServiceRequest, error) {
	assignerID = strings.TrimSpace(assignerID)
	assigner, ok := u.resolver.FetchUser(ctx, assignerID)
	if !ok || !assigner.IsServiceProvider() {
		return entities.ServiceRequest{}, entities.NotFound("No service provider exists")
	}
	current, err := u.GetServiceRequest(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if current.Status.IsTerminal() || current.Status == entities.ServiceRequestStatusInvoiced {
		return entities.ServiceRequest{}, entities.InvalidState("This request can no longer be reassigned", ErrStatusTransition)
	}

	updated, err := u.requests.UpdateAssigner(ctx, current.ID, assignerID, u.now().UTC())
	if err != nil {
		return entities.ServiceRequest{}, entities.ExternalFailure("Could not update service request", err)
	}
	updated = u.resolver.HydrateServiceRequest(ctx, updated)

	if current.AssignerID == "" && updated.ServiceProvider != nil && updated.Creator != nil {
		p := updated.ServiceProvider
		msg := fmt.Sprintf("%s has assigned a service request to you from %s", p.Name, updated.Creator.Name)
		u.notifier.Push(ctx, []string{assignerID}, "Reassign Service Request", msg)
		u.notifier.Record(ctx, providerCreator(p), []string{assignerID}, msg)
	}
	u.storeListeners(ctx, updated)
	return updated, nil
}

func (u *ServiceRequestUseCase) Dismiss(ctx context.Context, id, serviceProviderID string) error {
	req, err := u.GetServiceRequest(ctx, id)
	if err != nil {
		return err
	}
	serviceProviderID = strings.TrimSpace(serviceProviderID)
	if serviceProviderID == "" || (serviceProviderID != req.ServiceProviderID && serviceProviderID != req.AssignerID) {
		return entities.Unauthorized("You are not a provider on this request")
	}
	if req.IsDismissedBy(serviceProviderID) {
		return nil
	}
	if err := u.requests.AddDismissedBy(ctx, req.ID, serviceProviderID, u.now().UTC()); err != nil {
		return entities.ExternalFailure("Could not update service request", err)
	}
	return nil
}

func (u *ServiceRequestUseCase) Listeners(ctx context.Context, id string) ([]entities.ListenerUser, error) {
	req, err := u.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return ServiceRequestListeners(req), nil
}

// HandleServiceRequestCreated notifies the provider and stores listeners.
// The push is only sent when the service is scheduled for today.
func (u *ServiceRequestUseCase) HandleServiceRequestCreated(ctx context.Context, id string) error {
	req, err := u.GetServiceRequest(ctx, id)
	if err != nil {
		return err
	}
	u.storeListeners(ctx, req)

	p, h, c := req.ServiceProvider, req.Horse, req.Creator
	if p == nil || h == nil || c == nil {
		return nil
	}
	when := req.RequestDate.Format("Mon, Jan ") + ordinalDay(req.RequestDate) + req.RequestDate.Format(", 2006")
	msg := fmt.Sprintf("%s has scheduled a service with you for %s on %s", c.Name, h.BarnName, when)
	if sameDay(req.RequestDate, u.now()) {
		u.notifier.Push(ctx, []string{req.ServiceProviderID}, "Service Request", msg)
	}
	u.notifier.Record(ctx, providerCreator(p), []string{req.ServiceProviderID}, msg)
	return nil
}

// RequestPaymentSubmission asks the primary provider to submit a joint
// invoice for requests an assigner worked on.
func (u *ServiceRequestUseCase) RequestPaymentSubmission(ctx context.Context, assignerID, serviceProviderID string, requestIDs []string) error {
	assigner, ok := u.resolver.FetchUser(ctx, assignerID)
	if !ok || assigner.ServiceProvider == nil {
		return entities.NotFound("No user exists")
	}

	live := 0
	for _, id := range requestIDs {
		req, ok := u.resolver.FetchServiceRequest(ctx, id)
		if ok && !req.IsDismissedBy(serviceProviderID) {
			live++
		}
	}
	if live == 0 {
		return entities.NewDomainError(entities.KindNotFound, "This invoice is deleted by Service Provider", ErrRequestsDismissed)
	}

	msg := fmt.Sprintf("%s has requested an invoice submission. Please review and submit the joint invoice waiting in your Drafts.", assigner.ServiceProvider.Name)
	u.notifier.Push(ctx, []string{serviceProviderID}, "Request Payment Submission", msg)
	return nil
}

// RequestPaymentApproval asks an owner to register the user as a payment approver.
func (u *ServiceRequestUseCase) RequestPaymentApproval(ctx context.Context, userID, ownerID string, amount decimal.Decimal) error {
	user, ok := u.resolver.FetchUser(ctx, userID)
	if !ok || user.HorseManager == nil {
		return entities.NotFound("No user exists")
	}
	msg := fmt.Sprintf("%s does not have the ability to initiate payments on your behalf. Add them as an approved payer to expedite invoice payments. In the meantime, resolve the pending invoice of $%s via the payments tab.",
		user.HorseManager.Name, amount.StringFixed(2))
	u.notifier.Push(ctx, []string{ownerID}, "Request Payment Approval", msg)
	return nil
}

func (u *ServiceRequestUseCase) storeListeners(ctx context.Context, req entities.ServiceRequest) {
	if err := u.requests.UpdateListeners(ctx, req.ID, ServiceRequestListeners(req)); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("service_request_id", req.ID).Warn("[service_request] listener update failed")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
