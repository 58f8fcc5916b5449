package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"

	MaxNameLen = 50
)

type (
	UUID   = uuid.UUID
	Status string
	User   struct {
		UUID      UUID
		Name      string
		Birthdate *time.Time
		Status    Status
	}
	Users []*User

	AddUser struct {
		Name      string
		Birthdate *time.Time
	}
)

func (u *User) IsActive() bool { return u != nil && u.Status == StatusActive }
