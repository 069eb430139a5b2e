package event

import (
	"time"

	"github.com/abdrasaq14/payever-test/internal/domain/entity"
)

// UserCreatedName is the event name carried on the user_events queue.
const UserCreatedName = "user_created"

// UserCreated is the payload published when a user record is created.
// The same struct is decoded by the event worker, so publisher and
// consumer share one schema.
type UserCreated struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	User       entity.User `json:"user"`
}

// NewUserCreated builds the payload for a freshly persisted user.
func NewUserCreated(u *entity.User) UserCreated {
	return UserCreated{
		Event:      UserCreatedName,
		OccurredAt: time.Now().UTC(),
		User:       *u,
	}
}
