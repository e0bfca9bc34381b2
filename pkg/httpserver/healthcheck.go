package httpserver

import (
	"net/http"
)

// HealthCheckHandler returns a handler for liveness probes: 200 OK with
// body "ALIVE". The site has no backing dependencies to verify.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ALIVE"))
	}
}
