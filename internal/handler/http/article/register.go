package article

import (
	"net/http"

	artUC "newsdesk/internal/usecase/article"
)

// Register registers the article HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("GET /api/articles", ListHandler{Svc: svc})
	mux.Handle("GET /api/articles/{article_id}", GetHandler{Svc: svc})
	mux.Handle("PATCH /api/articles/{article_id}", PatchHandler{Svc: svc})
}
