package article

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP returns every article, newest first, as {"articles": [...]}.
// Bodies are omitted and each entry carries its comment count.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	out := make([]SummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, SummaryDTO{
			ArticleID:     s.ArticleID,
			Title:         s.Title,
			Topic:         s.Topic,
			Author:        s.Author,
			CreatedAt:     s.CreatedAt,
			Votes:         s.Votes,
			ArticleImgURL: s.ArticleImgURL,
			CommentCount:  s.CommentCount,
		})
	}

	respond.JSON(w, http.StatusOK, map[string][]SummaryDTO{"articles": out})
}
