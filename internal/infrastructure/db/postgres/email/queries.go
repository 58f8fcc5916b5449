package email

import (
	"strconv"
	"strings"

	domain "user-directory-api/internal/domain/email"
)

const (
	SelectEmailByID = `
		SELECT id, address, user_id
		FROM emails
		WHERE id = $1
	`
	SelectEmails = `
		SELECT id, address, user_id
		FROM emails`
	OrderByAddress = `
		ORDER BY address ASC`
	InsertEmail = `
		INSERT INTO emails (address, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	DeleteEmailByID = `
		DELETE FROM emails
		WHERE id = $1
	`
)

// buildSelectEmails appends one predicate per present constraint. Both
// constraints are ANDed; an empty address set adds no predicate.
func buildSelectEmails(q domain.Query) (string, []any) {
	var (
		where []string
		args  []any
	)

	if len(q.Addresses) > 0 {
		args = append(args, q.Addresses)
		where = append(where, "address = ANY($"+strconv.Itoa(len(args))+")")
	}
	if q.UserID != nil {
		args = append(args, *q.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}

	var sb strings.Builder
	sb.WriteString(SelectEmails)
	if len(where) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(OrderByAddress)

	return sb.String(), args
}
