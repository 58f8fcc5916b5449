package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"user-directory-api/internal/domain/apperr"
)

const (
	maxLocalPartLen = 64
	maxDomainLen    = 254
)

// hyphenated form only, any case
var uuidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// error messages name fields by their label tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	// the builtin uuid tag is lower-case only
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		return uuidRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mailbox", isMailboxSized)

	return v
}

// isMailboxSized bounds the parts of an address: 64 bytes before the last
// '@', 254 after it.
func isMailboxSized(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return false
	}

	return at <= maxLocalPartLen && len(addr)-at-1 <= maxDomainLen
}

// Struct checks args against their validate tags. Every failing field is
// reported in one Validation error.
func Struct(args any) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.Validation, "invalid arguments", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}

	return apperr.New(apperr.Validation, strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " must be defined"
	case "uuid":
		return field + " must be a UUID"
	case "email", "mailbox":
		return field + " is invalid"
	case "max":
		return field + " must be at most " + fe.Param() + " characters long"
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}

// NormalizeName trims a user name and composes it to NFC so that
// "Même" counts the same whichever way the accent was typed.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
