package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"aiobackend/internal/utils"
)

// Prometheus records request count, duration, response size and the in-flight
// gauge for every HTTP request.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		utils.InFlightRequests.Inc()
		defer utils.InFlightRequests.Dec()

		lrw := &loggingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(lrw, r)

		statusCode := strconv.Itoa(lrw.statusCode())
		path := r.URL.Path
		method := r.Method

		utils.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
		utils.HTTPRequestDurationSeconds.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		utils.HTTPResponseSizeBytes.WithLabelValues(method, path, statusCode).Observe(float64(lrw.responseSize))
	})
}

// loggingResponseWriter captures the status code and response size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status       int
	responseSize int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(data []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(data)
	lrw.responseSize += n
	return n, err
}

func (lrw *loggingResponseWriter) statusCode() int {
	if lrw.status == 0 {
		return http.StatusOK
	}
	return lrw.status
}
