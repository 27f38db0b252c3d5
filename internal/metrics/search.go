package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	searchResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conductor",
			Name:      "search_results_total",
			Help:      "Total number of search results returned, by entity",
		},
		[]string{"entity"},
	)

	searchEmptyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conductor",
			Name:      "search_empty_total",
			Help:      "Total number of searches that returned no results, by entity",
		},
		[]string{"entity"},
	)
)

func init() {
	prometheus.MustRegister(searchResultsTotal)
	prometheus.MustRegister(searchEmptyTotal)
}

// ObserveSearch records the outcome of one search request.
func ObserveSearch(entity string, numResults int) {
	if numResults == 0 {
		searchEmptyTotal.WithLabelValues(entity).Inc()
		return
	}
	searchResultsTotal.WithLabelValues(entity).Add(float64(numResults))
}
