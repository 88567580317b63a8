package user

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP returns every user as {"users": [...]}.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, DTO{
			Username:  u.Username,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
		})
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"users": out})
}
