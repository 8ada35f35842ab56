package middlewares

import (
	"context"
	"net/http"
	"time"

	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.RequestLogger.WithFields(logrus.Fields{
			constvars.LoggingRequestIDKey:  requestID,
			"method":                       r.Method,
			constvars.LoggingEndpointKey:   r.URL.Path,
			constvars.LoggingStatusCodeKey: rec.statusCode,
			"duration":                     time.Since(start).String(),
			"remote_addr":                  r.RemoteAddr,
		}).Info("request completed")
	})
}
