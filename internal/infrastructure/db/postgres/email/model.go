package email

import (
	"github.com/google/uuid"
)

type (
	Email struct {
		UUID    uuid.UUID
		Address string
		UserID  uuid.UUID
	}
	Emails []*Email
)
