package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID      uuid.UUID
		Name      string
		Birthdate *time.Time
		Status    string
	}
	Users []*User
)
