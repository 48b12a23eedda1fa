package entities

import "time"

type ServiceShow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
