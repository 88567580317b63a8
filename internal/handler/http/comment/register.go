package comment

import (
	"net/http"

	artUC "newsdesk/internal/usecase/article"
	commentUC "newsdesk/internal/usecase/comment"
)

// Register registers the comment HTTP handlers with the given mux. The
// handlers under /api/articles need the article service to confirm the
// parent exists before touching comments.
func Register(mux *http.ServeMux, svc *commentUC.Service, articles *artUC.Service) {
	mux.Handle("GET /api/articles/{article_id}/comments", ListHandler{Svc: svc, Articles: articles})
	mux.Handle("POST /api/articles/{article_id}/comments", CreateHandler{Svc: svc, Articles: articles})
	mux.Handle("DELETE /api/comments/{comment_id}", DeleteHandler{Svc: svc})
}
