// Package apidoc serves the API's self-description: a JSON document listing
// every available endpoint with example requests and responses.
package apidoc

import (
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpoints []byte

// Handler serves the embedded endpoint catalog.
type Handler struct{}

// Register registers the API description endpoint with the given mux.
func Register(mux *http.ServeMux) {
	mux.Handle("GET /api", Handler{})
	mux.Handle("GET /api/{$}", Handler{})
}

// ServeHTTP writes the endpoint catalog verbatim. The document is embedded at
// build time, so failure here is not a reachable state once serving starts.
func (Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(endpoints)
}
