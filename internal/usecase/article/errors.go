// Package article provides the use cases for reading articles and adjusting
// their vote counters. All failures surface as typed request errors so the
// response pipeline can map them without inspecting messages.
package article

import (
	"net/http"

	"newsdesk/internal/domain/entity"
)

// Sentinel failures for article operations.
var (
	// ErrArticleNotFound indicates the referenced article does not exist.
	// It is returned both by fetches that find no row and by the existence
	// guard, including vote patches whose update affected nothing.
	ErrArticleNotFound = &entity.RequestError{
		Status: http.StatusNotFound,
		Msg:    "Not found",
	}
)
