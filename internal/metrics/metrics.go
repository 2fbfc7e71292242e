// Package metrics exposes Prometheus counters for the calculation
// endpoints.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	calcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thermo_calc_requests_total",
			Help: "Calculation requests per device",
		},
		[]string{"device"},
	)
	calcErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thermo_calc_errors_total",
			Help: "Failed calculations per device and error kind",
		},
		[]string{"device", "kind"},
	)
)

func init() {
	prometheus.MustRegister(calcRequests, calcErrors)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument counts requests and failures for one device endpoint. The
// error kind is recovered from the response status the handlers emit:
// 400 degenerate input, 422 invalid physical state, 5xx oracle failure.
func Instrument(device string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calcRequests.WithLabelValues(device).Inc()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		switch {
		case rec.status == http.StatusBadRequest:
			calcErrors.WithLabelValues(device, "degenerate_input").Inc()
		case rec.status == http.StatusUnprocessableEntity:
			calcErrors.WithLabelValues(device, "invalid_physical_state").Inc()
		case rec.status >= 500:
			calcErrors.WithLabelValues(device, "oracle_failure").Inc()
		}
	}
}
