package middleware

import (
	"net/http"

	"github.com/artfest/gallery-api/app/httputil"
	"github.com/artfest/gallery-api/app/metrics"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
)

// GateOpen rejects mutations once the contest has ended. Services re-check
// the gate themselves; this keeps obviously late requests away from the
// store and counts them.
func GateOpen(gate *contestdomain.Gate, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gate.Closed() {
				m.GateRejections.Inc()
				httputil.Error(w, http.StatusConflict, "contest has ended")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
