package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	UserAdded       = "user_added_total"
	UserDeactivated = "user_deactivated_total"
	EmailAdded      = "email_added_total"
	EmailDeleted    = "email_deleted_total"
	AppRequests     = "app_requests_total"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userdirectory",
			Name:      "general_counters",
		},
		[]string{"result"})
}
