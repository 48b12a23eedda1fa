package entities

import "time"

type UserType string

const (
	UserTypeHorseManager    UserType = "horse_manager"
	UserTypeServiceProvider UserType = "service_provider"
)

// User is an account. A user may hold a horse manager profile, a service
// provider profile, or both; Type records the role the user acts in.
type User struct {
	ID              string
	Email           string
	Type            UserType
	Token           string
	HorseManager    *HorseManager
	ServiceProvider *ServiceProvider
	CreatedAt       time.Time
}

type HorseManager struct {
	UserID    string
	Name      string
	AvatarURL string
	Phone     string
	Location  string
	Customer  *BillingCustomer
}

type ServiceProvider struct {
	UserID    string
	Name      string
	AvatarURL string
	Phone     string
	Location  string
	Account   *PayoutAccount
}

type BillingCustomer struct {
	ID            string
	DefaultSource string
	Cards         []Card
}

type Card struct {
	ID       string
	Brand    string
	Last4    string
	ExpMonth int64
	ExpYear  int64
}

type PayoutAccount struct {
	ID             string
	Email          string
	ChargesEnabled bool
	PayoutsEnabled bool
}

func (u User) IsHorseManager() bool {
	return u.HorseManager != nil
}

func (u User) IsServiceProvider() bool {
	return u.ServiceProvider != nil
}

// DisplayName prefers the profile matching the user's type.
func (u User) DisplayName() string {
	if u.Type == UserTypeServiceProvider && u.ServiceProvider != nil {
		return u.ServiceProvider.Name
	}
	if u.HorseManager != nil {
		return u.HorseManager.Name
	}
	if u.ServiceProvider != nil {
		return u.ServiceProvider.Name
	}
	return ""
}

// CanBeCharged reports whether the user has a billing customer with a default source.
func (u User) CanBeCharged() bool {
	return u.HorseManager != nil && u.HorseManager.Customer.HasDefaultSource()
}

func (c *BillingCustomer) HasDefaultSource() bool {
	return c != nil && c.ID != "" && c.DefaultSource != ""
}

func (p *ServiceProvider) PayoutAccountID() string {
	if p == nil || p.Account == nil {
		return ""
	}
	return p.Account.ID
}
