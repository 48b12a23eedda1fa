package response

import (
	"time"

	"equine_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ServiceLineResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// UserSummaryResponse is the public part of a hydrated manager or provider.
type UserSummaryResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type HorseSummaryResponse struct {
	ID          string `json:"id"`
	BarnName    string `json:"barn_name"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type ShowResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceRequestResponse struct {
	ID               string                `json:"id"`
	HorseID          string                `json:"horse_id"`
	HorseBarnName    string                `json:"horse_barn_name"`
	HorseDisplayName string                `json:"horse_display_name"`
	ShowID           string                `json:"show_id,omitempty"`
	CompetitionClass string                `json:"competition_class,omitempty"`
	Instruction      string                `json:"instruction,omitempty"`
	ProviderNote     string                `json:"provider_note,omitempty"`
	Services         []ServiceLineResponse `json:"services"`
	Total            decimal.Decimal       `json:"total"`
	Status           string                `json:"status"`
	IsCustomRequest  bool                  `json:"is_custom_request"`
	DismissedBy      []string              `json:"dismissed_by,omitempty"`
	RequestDate      time.Time             `json:"request_date"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`

	Horse           *HorseSummaryResponse `json:"horse,omitempty"`
	Show            *ShowResponse         `json:"show,omitempty"`
	ServiceProvider *UserSummaryResponse  `json:"service_provider,omitempty"`
	Assigner        *UserSummaryResponse  `json:"assigner,omitempty"`
	Creator         *UserSummaryResponse  `json:"creator,omitempty"`
	Payer           *PayerResponse        `json:"payer,omitempty"`

	ServiceProviderID string `json:"service_provider_id"`
	AssignerID        string `json:"assigner_id,omitempty"`
	CreatorID         string `json:"creator_id"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	res := ServiceRequestResponse{
		ID:                r.ID,
		HorseID:           r.HorseID,
		HorseBarnName:     r.HorseBarnName,
		HorseDisplayName:  r.HorseDisplayName,
		ShowID:            r.ShowID,
		CompetitionClass:  r.CompetitionClass,
		Instruction:       r.Instruction,
		ProviderNote:      r.ProviderNote,
		Services:          make([]ServiceLineResponse, 0, len(r.Services)),
		Total:             r.TotalAmount(),
		Status:            string(r.Status),
		IsCustomRequest:   r.IsCustomRequest,
		DismissedBy:       r.DismissedBy,
		RequestDate:       r.RequestDate,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		ServiceProviderID: r.ServiceProviderID,
		AssignerID:        r.AssignerID,
		CreatorID:         r.CreatorID,
	}
	for _, l := range r.Services {
		res.Services = append(res.Services, ServiceLineResponse{ID: l.ID, Name: l.Name, Rate: l.Rate, Quantity: l.Quantity, Total: l.Total()})
	}
	if r.Horse != nil {
		res.Horse = &HorseSummaryResponse{ID: r.Horse.ID, BarnName: r.Horse.BarnName, DisplayName: r.Horse.DisplayName, AvatarURL: r.Horse.AvatarURL}
	}
	if r.Show != nil {
		res.Show = &ShowResponse{ID: r.Show.ID, Name: r.Show.Name}
	}
	res.ServiceProvider = providerSummary(r.ServiceProvider)
	res.Assigner = providerSummary(r.Assigner)
	if r.Creator != nil {
		res.Creator = &UserSummaryResponse{UserID: r.Creator.UserID, Name: r.Creator.Name, AvatarURL: r.Creator.AvatarURL}
	}
	if r.Payer != nil {
		p := FromPayer(*r.Payer)
		res.Payer = &p
	}
	return res
}

func providerSummary(p *entities.ServiceProvider) *UserSummaryResponse {
	if p == nil {
		return nil
	}
	return &UserSummaryResponse{UserID: p.UserID, Name: p.Name, AvatarURL: p.AvatarURL}
}
