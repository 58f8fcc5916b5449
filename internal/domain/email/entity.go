package email

import (
	"github.com/google/uuid"
)

type (
	UUID  = uuid.UUID
	Email struct {
		UUID    UUID
		Address string
		UserID  UUID
	}
	Emails []*Email

	AddEmail struct {
		Address string
		UserID  UUID
	}

	StringFilter struct {
		Equal string
		In    []string
	}
	Filters struct {
		Address *StringFilter
	}
	UserIDFilter struct {
		Equal UUID
	}

	// Query is the storage-level form of a list request.
	Query struct {
		// Addresses is a membership set; empty means no address constraint.
		Addresses []string
		UserID    *UUID
	}
)

// AddressSet merges Equal into In: both are members of one set, so
// {equal: A, in: [B, C]} matches A, B or C.
func (f Filters) AddressSet() []string {
	if f.Address == nil {
		return nil
	}

	set := make([]string, 0, len(f.Address.In)+1)
	set = append(set, f.Address.In...)
	if f.Address.Equal != "" {
		set = append(set, f.Address.Equal)
	}
	if len(set) == 0 {
		return nil
	}

	return set
}

// ToQuery combines the address set with an optional owner constraint.
func (f Filters) ToQuery(userFilter *UserIDFilter) Query {
	q := Query{Addresses: f.AddressSet()}
	if userFilter != nil {
		id := userFilter.Equal
		q.UserID = &id
	}

	return q
}
