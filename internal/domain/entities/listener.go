package entities

// ListenerUser is a user to be notified about changes to an entity, with the role they act in.
type ListenerUser struct {
	UserID   string
	UserType UserType
}
