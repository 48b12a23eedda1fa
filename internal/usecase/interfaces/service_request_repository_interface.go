package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
	"time"
)

// ServiceRequestQuery narrows a page scan. An empty HorseID scans every
// request; zero dates do not filter.
type ServiceRequestQuery struct {
	HorseID     string
	RequestFrom time.Time
	RequestTo   time.Time
}

// IServiceRequestRepository abstracts persistence for service requests.
//
// ListPage returns up to limit records following the record with id afterID
// (or from the start when afterID is empty), newest request date first when
// filtering by horse.
type IServiceRequestRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListPage(ctx context.Context, q ServiceRequestQuery, afterID string, limit int) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ServiceRequestStatus, at time.Time) (entities.ServiceRequest, error)
	UpdateAssigner(ctx context.Context, id, assignerID string, at time.Time) (entities.ServiceRequest, error)
	AddDismissedBy(ctx context.Context, id, providerID string, at time.Time) error
	UpdateListeners(ctx context.Context, id string, listeners []entities.ListenerUser) error
	MarkInvoiced(ctx context.Context, ids []string, at time.Time) error
}
