package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the API boundary can map it to a transport code.
type Kind uint8

const (
	// Technical is the zero value: anything not explicitly classified is opaque.
	Technical Kind = iota
	Validation
	NotFoundUser
	NotFoundEmail
	InactiveUser
)

const (
	NotFoundUserMessage  = "no user was found"
	NotFoundEmailMessage = "no email was found"
	InactiveUserMessage  = "the user must be an active user"
	TechnicalMessage     = "an error occurred"
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "Validation"
	case NotFoundUser:
		return "NotFoundUser"
	case NotFoundEmail:
		return "NotFoundEmail"
	case InactiveUser:
		return "InactiveUser"
	default:
		return "Technical"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on kind so errors.Is(err, apperr.ErrInactiveUser) works for any message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var (
	ErrNotFoundUser  = New(NotFoundUser, NotFoundUserMessage)
	ErrNotFoundEmail = New(NotFoundEmail, NotFoundEmailMessage)
	ErrInactiveUser  = New(InactiveUser, InactiveUserMessage)
)

// KindOf returns the kind of the first *Error in err's chain, Technical otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Technical
}

// MessageOf returns the message safe to show to a caller.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Technical {
		return e.Message
	}
	return TechnicalMessage
}
