// Package comment provides the use cases for listing, creating, and deleting
// comments on articles.
package comment

import (
	"net/http"

	"newsdesk/internal/domain/entity"
)

// Sentinel failures for comment operations.
var (
	// ErrCommentNotFound indicates the referenced comment does not exist.
	ErrCommentNotFound = &entity.RequestError{
		Status: http.StatusNotFound,
		Msg:    "Not found",
	}

	// ErrUnprocessableComment indicates the comment payload is missing a
	// username or a body. It is only raised after the parent article's
	// existence has been confirmed, so a missing article wins over a
	// malformed payload.
	ErrUnprocessableComment = &entity.RequestError{
		Status: http.StatusUnprocessableEntity,
		Msg:    "Unprocessable entity",
	}
)
