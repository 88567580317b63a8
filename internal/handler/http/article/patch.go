package article

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type PatchHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a vote delta to one article and returns the updated row
// as {"article": {...}}. The body must carry a numeric inc_votes field; a
// body that cannot be decoded, or one without inc_votes, is a 400.
func (h PatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Msg(w, http.StatusBadRequest, "Bad request")
		return
	}
	if req.IncVotes == nil {
		respond.Msg(w, http.StatusBadRequest, "Bad request")
		return
	}

	a, err := h.Svc.AddVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"article": {
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}})
}
