package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// UnmatchedRoute labels requests that matched no route.
const UnmatchedRoute = "unmatched"

// routePattern returns the chi pattern that served r. It is complete only
// after the router has run.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}

// statusClass buckets a status code as "2xx", "4xx" and so on. A zero
// status means the connection was hijacked or nothing was written.
func statusClass(code int) string {
	if code <= 0 {
		return "none"
	}
	return strconv.Itoa(code/100) + "xx"
}
