package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "payments",
			Name:      "processed_total",
			Help:      "Transaction responses processed, by outcome",
		},
		[]string{"outcome"}, // approved, held, declined, duplicate, malformed
	)

	CapturesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "captures",
			Name:      "attempts_total",
			Help:      "Capture attempts, by result code",
		},
		[]string{"code"},
	)

	CapturedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "captures",
			Name:      "amount_total",
			Help:      "Sum of successfully captured amounts",
		},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Gateway response cache lookups",
		},
		[]string{"result"}, // hit, miss, bypass
	)
)

func init() {
	Registry.MustRegister(PaymentsProcessed, CapturesTotal, CapturedAmount, CacheLookups)
}
