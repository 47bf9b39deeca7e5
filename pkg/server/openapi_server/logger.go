// SPDX-License-Identifier: MIT

package openapi_server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// Logger logs every request with its duration and tags it with a request id
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestId := r.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		inner.ServeHTTP(w, r)

		log.Printf(
			"%s %s %s %s %s",
			r.Method,
			r.RequestURI,
			name,
			time.Since(start),
			requestId,
		)
	})
}
