package middleware

import (
	"net/http"
	"strconv"
	"time"

	"assetbook/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// Instrument records request count and latency for h under name. Route names keep label
// cardinality bounded where raw paths carry ids.
func Instrument(name string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		h(wrapped, r, ps)

		metrics.HTTPRequests.WithLabelValues(name, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(name, r.Method).Observe(time.Since(start).Seconds())
	}
}
