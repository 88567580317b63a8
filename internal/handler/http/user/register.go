package user

import (
	"net/http"

	userUC "newsdesk/internal/usecase/user"
)

// Register registers the user HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET /api/users", ListHandler{Svc: svc})
}
