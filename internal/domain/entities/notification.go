package entities

import "time"

type NotificationCreator struct {
	UserID    string
	Name      string
	AvatarURL string
}

type Notification struct {
	ID         string
	ReceiverID string
	Message    string
	Creator    NotificationCreator
	IsRead     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PushMessage is a device notification fanned out to every token of its receivers.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
}
