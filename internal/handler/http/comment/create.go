package comment

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
	commentUC "newsdesk/internal/usecase/comment"
)

type CreateHandler struct {
	Svc      *commentUC.Service
	Articles *artUC.Service
}

// ServeHTTP inserts a comment under one article and returns it as
// {"comment": {...}} with status 201. Checks run in a fixed order: the id is
// parsed (400), the parent article is confirmed (404), then the payload shape
// is validated (422). A missing article therefore outranks a bad payload.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	if err := h.Articles.Exists(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Msg(w, http.StatusBadRequest, "Bad request")
		return
	}

	created, err := h.Svc.Create(r.Context(), id, commentUC.CreateInput{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"comment": {
		CommentID: created.CommentID,
		ArticleID: created.ArticleID,
		Votes:     created.Votes,
		CreatedAt: created.CreatedAt,
		Author:    created.Author,
		Body:      created.Body,
	}})
}
