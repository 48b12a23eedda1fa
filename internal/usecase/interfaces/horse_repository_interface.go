package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
)

type IHorseRepository interface {
	GetByID(ctx context.Context, id string) (entities.Horse, error)
}

type IHorseOwnerRepository interface {
	ListByHorseID(ctx context.Context, horseID string) ([]entities.HorseOwner, error)
}

type IServiceShowRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceShow, error)
}
