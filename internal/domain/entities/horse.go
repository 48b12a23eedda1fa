package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Horse struct {
	ID          string
	BarnName    string
	DisplayName string
	AvatarURL   string
	TrainerID   string
	CreatorID   string
	LeaserID    string
	OwnerIDs    []string
	IsDeleted   bool
	CreatedAt   time.Time

	// Hydrated relations. Nil or empty when the lookup missed.
	Trainer *HorseManager
	Creator *HorseManager
	Leaser  *HorseManager
	Owners  []HorseOwner
}

// HorseOwner is a co-owner record with a percentage stake in the horse.
type HorseOwner struct {
	ID         string
	HorseID    string
	UserID     string
	Name       string
	AvatarURL  string
	Percentage decimal.Decimal
	CreatedAt  time.Time
}

func (h Horse) HasOwnerID(userID string) bool {
	return slices.Contains(h.OwnerIDs, userID)
}

// Owner returns the hydrated owner record for userID.
func (h Horse) Owner(userID string) (HorseOwner, bool) {
	for _, o := range h.Owners {
		if o.UserID == userID {
			return o, true
		}
	}
	return HorseOwner{}, false
}
