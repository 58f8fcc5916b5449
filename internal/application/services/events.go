package services

import (
	"context"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/infrastructure/mq"
)

// publish hands e to the publisher worker. The change is already stored, so
// when ctx ends before the buffer has room the event is dropped and the
// caller still succeeds.
func publish(ctx context.Context, q ports.RabbitMQ, e mq.Event) bool {
	select {
	case q.GetInputChan() <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
