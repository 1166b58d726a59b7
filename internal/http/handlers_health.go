package httpx

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	healthOKResponse       = `{"status":"ok"}`
	healthDegradedResponse = `{"status":"degraded"}`

	healthPingTimeout = 2 * time.Second
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlers serves liveness checks, including a bounded store ping when
// a Pinger is configured.
type HealthHandlers struct {
	DB Pinger
}

// Check returns 200 when the service and its store are reachable, 503 when
// the store ping fails. HEAD requests get the status code with no body.
func (h *HealthHandlers) Check(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := healthOKResponse

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body = healthDegradedResponse
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
