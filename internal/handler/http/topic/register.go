package topic

import (
	"net/http"

	topicUC "newsdesk/internal/usecase/topic"
)

// Register registers the topic HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *topicUC.Service) {
	mux.Handle("GET /api/topics", ListHandler{Svc: svc})
}
