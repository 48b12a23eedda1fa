package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
)

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) error
}

// IPushSender delivers a push message to devices. Delivery is best effort.
type IPushSender interface {
	Send(ctx context.Context, msg entities.PushMessage) error
}
