package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
)

// IUserRepository abstracts persistence for users. GetByID returns a zero
// User (empty ID) when the user does not exist.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	UpdateCustomer(ctx context.Context, userID string, customer *entities.BillingCustomer) error
}
