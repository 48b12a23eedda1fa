package usecase

import (
	"context"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/google/uuid"
)

// INotifier delivers best-effort notifications. Failures are logged and
// never returned to the caller.
type INotifier interface {
	Push(ctx context.Context, receiverIDs []string, title, body string)
	Record(ctx context.Context, creator entities.NotificationCreator, receiverIDs []string, message string)
}

type Notifier struct {
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
	push          interfaces.IPushSender
	now           func() time.Time
}

var _ INotifier = (*Notifier)(nil)

func NewNotifier(users interfaces.IUserRepository, notifications interfaces.INotificationRepository, push interfaces.IPushSender) *Notifier {
	return &Notifier{users: users, notifications: notifications, push: push, now: time.Now}
}

// Push sends one message to the device tokens of every distinct receiver.
func (n *Notifier) Push(ctx context.Context, receiverIDs []string, title, body string) {
	log := logger.FromContext(ctx)
	if n.push == nil {
		return
	}

	var tokens []string
	seen := map[string]struct{}{}
	for _, id := range receiverIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		u, err := n.users.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).WithField("user_id", id).Warn("[notifier] receiver lookup failed")
			continue
		}
		if u.Token != "" {
			tokens = append(tokens, u.Token)
		}
	}
	if len(tokens) == 0 {
		return
	}

	if err := n.push.Send(ctx, entities.PushMessage{Tokens: tokens, Title: title, Body: body}); err != nil {
		log.WithError(err).WithField("title", title).Warn("[notifier] push delivery failed")
	}
}

// Record stores an in-app notification per distinct receiver.
func (n *Notifier) Record(ctx context.Context, creator entities.NotificationCreator, receiverIDs []string, message string) {
	if n.notifications == nil {
		return
	}
	now := n.now().UTC()
	seen := map[string]struct{}{}
	for _, id := range receiverIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		err := n.notifications.Create(ctx, entities.Notification{
			ID:         uuid.NewString(),
			ReceiverID: id,
			Message:    message,
			Creator:    creator,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			logger.FromContext(ctx).WithError(err).WithField("receiver_id", id).Warn("[notifier] notification write failed")
		}
	}
}

func providerCreator(p *entities.ServiceProvider) entities.NotificationCreator {
	return entities.NotificationCreator{UserID: p.UserID, Name: p.Name, AvatarURL: p.AvatarURL}
}
