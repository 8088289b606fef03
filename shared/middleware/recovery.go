package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/logger"
)

// RecoveryMiddleware is the outermost safety net: any panic that escapes a
// handler is rendered once as the JSON error envelope instead of killing the
// connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(r.Context())
				logger.WithRequestID(logger.Logger, requestID).
					WithField("panic", fmt.Sprintf("%v", rec)).
					Error("handler panicked")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("%v", rec)})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
