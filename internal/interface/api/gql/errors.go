package gql

import (
	"context"

	"go.uber.org/zap"

	"user-directory-api/internal/domain/apperr"
	"user-directory-api/pkg/logger"
)

const (
	CodeBadUserInput  = "BAD_USER_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeUnprocessable = "UNPROCESSABLE"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// Error is what a resolver hands back to graphql-go; Extensions ends up
// under "extensions" in the response.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func codeOf(kind apperr.Kind) string {
	switch kind {
	case apperr.Validation:
		return CodeBadUserInput
	case apperr.NotFoundUser, apperr.NotFoundEmail:
		return CodeNotFound
	case apperr.InactiveUser:
		return CodeUnprocessable
	case apperr.Technical:
		return CodeInternal
	}
	return CodeInternal
}

// fail converts a directory error into a GraphQL error. Technical details
// only reach the log.
func (r *Resolver) fail(ctx context.Context, op string, err error) *Error {
	kind := apperr.KindOf(err)
	if kind == apperr.Technical {
		logger.WithRequestID(ctx, r.logger).Error(op+" error", zap.Error(err))
	}

	return &Error{
		Message: apperr.MessageOf(err),
		Code:    codeOf(kind),
	}
}
