package mq

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys of the directory events.
const (
	UserAdded       = "user.added"
	UserDeactivated = "user.deactivated"
	EmailAdded      = "email.added"
	EmailDeleted    = "email.deleted"
)

var RoutingKeys = []string{UserAdded, UserDeactivated, EmailAdded, EmailDeleted}

type (
	Event struct {
		Id       uuid.UUID `json:"event_id"`
		TS       time.Time `json:"time_stamp"`
		Action   string    `json:"event_action"`
		EntityID string    `json:"entity_id"`
		Payload  any       `json:"payload,omitempty"`
	}

	UserPayload struct {
		Name      string     `json:"name"`
		Birthdate *time.Time `json:"birthdate,omitempty"`
		Status    string     `json:"status"`
	}
	EmailPayload struct {
		Address string `json:"address"`
		UserID  string `json:"user_id"`
	}
)

func NewEvent(action, entityID string, payload any) Event {
	return Event{
		Id:       uuid.New(),
		TS:       time.Now().UTC(),
		Action:   action,
		EntityID: entityID,
		Payload:  payload,
	}
}
