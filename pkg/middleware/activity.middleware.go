package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"gadgetmart-auth/pkg/id"
	"gadgetmart-auth/pkg/kafka"
)

// ActivityPublisher is satisfied by the kafka producer; nil disables logging.
type ActivityPublisher interface {
	Publish(ctx context.Context, event *kafka.ActivityEvent) error
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// ActivityLogger publishes one event per request. Delivery is fire-and-forget:
// a broker outage must never delay or fail an authentication request.
//
// The logger runs outside the auth guards, so the caller's identity is
// resolved here from the bearer token directly. A missing or bad token just
// leaves the event anonymous.
func ActivityLogger(publisher ActivityPublisher, auth *AuthMiddleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if publisher == nil {
				return
			}

			var userID string
			if auth != nil {
				if token, ok := extractToken(r); ok && token != "" {
					if claims, err := auth.verifier.ParseAndValidate(token); err == nil {
						userID = claims.UserID
					}
				}
			}
			event := &kafka.ActivityEvent{
				EventID:   id.GenerateEventID("act"),
				UserID:    userID,
				IP:        ClientIP(r),
				Method:    r.Method,
				Path:      r.URL.Path,
				Status:    rec.status,
				Timestamp: time.Now().UTC(),
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := publisher.Publish(ctx, event); err != nil {
					log.Printf("[ACTIVITY] publish failed: %v", err)
				}
			}()
		})
	}
}
