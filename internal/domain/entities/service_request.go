package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceRequestStatus string

const (
	ServiceRequestStatusPending   ServiceRequestStatus = "pending"
	ServiceRequestStatusAccepted  ServiceRequestStatus = "accepted"
	ServiceRequestStatusDeclined  ServiceRequestStatus = "declined"
	ServiceRequestStatusCompleted ServiceRequestStatus = "completed"
	ServiceRequestStatusInvoiced  ServiceRequestStatus = "invoiced"
	ServiceRequestStatusPaid      ServiceRequestStatus = "paid"
)

var serviceRequestTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	ServiceRequestStatusPending:   {ServiceRequestStatusAccepted, ServiceRequestStatusDeclined, ServiceRequestStatusInvoiced},
	ServiceRequestStatusAccepted:  {ServiceRequestStatusCompleted, ServiceRequestStatusInvoiced},
	ServiceRequestStatusCompleted: {ServiceRequestStatusInvoiced},
	ServiceRequestStatusInvoiced:  {ServiceRequestStatusPaid},
}

func (s ServiceRequestStatus) Valid() bool {
	switch s {
	case ServiceRequestStatusPending, ServiceRequestStatusAccepted, ServiceRequestStatusDeclined,
		ServiceRequestStatusCompleted, ServiceRequestStatusInvoiced, ServiceRequestStatusPaid:
		return true
	}
	return false
}

func (s ServiceRequestStatus) IsTerminal() bool {
	return s == ServiceRequestStatusDeclined || s == ServiceRequestStatusPaid
}

func (s ServiceRequestStatus) CanTransitionTo(next ServiceRequestStatus) bool {
	return slices.Contains(serviceRequestTransitions[s], next)
}

// ServiceLine is a priced service on a request. A quantity below one counts as one.
type ServiceLine struct {
	ID       string
	Name     string
	Rate     decimal.Decimal
	Quantity int
}

func (l ServiceLine) Total() decimal.Decimal {
	return l.Rate.Mul(decimal.NewFromInt(int64(max(l.Quantity, 1))))
}

type ServiceRequest struct {
	ID                string
	HorseID           string
	HorseBarnName     string
	HorseDisplayName  string
	ShowID            string
	CompetitionClass  string
	ServiceProviderID string
	AssignerID        string
	CreatorID         string
	Instruction       string
	ProviderNote      string
	Services          []ServiceLine
	Status            ServiceRequestStatus
	IsCustomRequest   bool
	DismissedBy       []string
	ListenerUsers     []ListenerUser
	RequestDate       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Hydrated relations. Nil when absent or when the lookup missed.
	Horse           *Horse
	Show            *ServiceShow
	ServiceProvider *ServiceProvider
	Assigner        *ServiceProvider
	Creator         *HorseManager
	Payer           *Payer
}

func (r ServiceRequest) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.Services {
		total = total.Add(s.Total())
	}
	return total
}

func (r ServiceRequest) IsDismissedBy(providerID string) bool {
	return slices.Contains(r.DismissedBy, providerID)
}

// PayoutProvider is the provider that receives the request's amount: the
// assigner when one was hydrated, otherwise the original provider.
func (r ServiceRequest) PayoutProvider() *ServiceProvider {
	if r.Assigner != nil {
		return r.Assigner
	}
	return r.ServiceProvider
}
