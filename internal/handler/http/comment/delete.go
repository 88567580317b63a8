package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	commentUC "newsdesk/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *commentUC.Service }

// ServeHTTP deletes one comment by id and returns 204 with no body. The
// delete doubles as the existence check; zero affected rows is a 404.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("comment_id"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
