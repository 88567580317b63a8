package topic

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	topicUC "newsdesk/internal/usecase/topic"
)

type ListHandler struct{ Svc *topicUC.Service }

// ServeHTTP returns every topic as {"topics": [...]}.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	out := make([]DTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, DTO{
			Slug:        t.Slug,
			Description: t.Description,
		})
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"topics": out})
}
