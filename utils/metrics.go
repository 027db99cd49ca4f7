package utils

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchRequestsTotal counts filter/search requests served.
	SearchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_search_requests_total",
		Help: "Total number of provider search requests handled.",
	})

	// ProvidersBySpecialty tracks the current provider count per specialty,
	// refreshed by the stats cron job.
	ProvidersBySpecialty = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "directory_providers_by_specialty",
		Help: "Number of providers listed in the directory, by specialty.",
	}, []string{"specialty"})
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal, ProvidersBySpecialty)
}
