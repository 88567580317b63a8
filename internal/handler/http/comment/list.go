package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
	commentUC "newsdesk/internal/usecase/comment"
)

type ListHandler struct {
	Svc      *commentUC.Service
	Articles *artUC.Service
}

// ServeHTTP returns the comments of one article, newest first, as
// {"comments": [...]}. An empty list cannot distinguish a missing article
// from an uncommented one, so the article is checked first: missing parent
// is 404, an article without comments is 200 with an empty list.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	if err := h.Articles.Exists(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}

	comments, err := h.Svc.ListForArticle(r.Context(), id)
	if err != nil {
		respond.Err(w, err)
		return
	}

	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, DTO{
			CommentID: c.CommentID,
			ArticleID: c.ArticleID,
			Votes:     c.Votes,
			CreatedAt: c.CreatedAt,
			Author:    c.Author,
			Body:      c.Body,
		})
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"comments": out})
}
