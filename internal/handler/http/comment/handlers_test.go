package comment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/comment"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
	commentUC "newsdesk/internal/usecase/comment"
)

/* ─────────────────────────── stub repositories ─────────────────────────── */

type stubCommentRepo struct {
	comments []*entity.Comment
	deleted  bool
	err      error

	insertCalled bool
	listCalled   bool
}

func (s *stubCommentRepo) ListByArticle(_ context.Context, _ int64) ([]*entity.Comment, error) {
	s.listCalled = true
	return s.comments, s.err
}

func (s *stubCommentRepo) Insert(_ context.Context, articleID int64, author, body string) (*entity.Comment, error) {
	s.insertCalled = true
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Comment{
		CommentID: 301, ArticleID: articleID, Votes: 0,
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Author:    author, Body: body,
	}, nil
}

func (s *stubCommentRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return s.deleted, s.err
}

func (s *stubCommentRepo) Count(_ context.Context) (int64, error) {
	return 0, nil
}

type stubArticleRepo struct {
	exists bool
	err    error
}

func (s *stubArticleRepo) Get(_ context.Context, _ int64) (*entity.Article, error) {
	return nil, nil
}

func (s *stubArticleRepo) ListWithCommentCount(_ context.Context) ([]repository.ArticleSummary, error) {
	return nil, nil
}

func (s *stubArticleRepo) AddVotes(_ context.Context, _ int64, _ int) (*entity.Article, error) {
	return nil, nil
}

func (s *stubArticleRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return s.exists, s.err
}

func (s *stubArticleRepo) Count(_ context.Context) (int64, error) {
	return 0, nil
}

func newMux(comments *stubCommentRepo, articles *stubArticleRepo) *http.ServeMux {
	mux := http.NewServeMux()
	comment.Register(mux,
		&commentUC.Service{Repo: comments},
		&artUC.Service{Repo: articles})
	return mux
}

func decodeMsg(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body["msg"]
}

/* ─────────────────────── GET /api/articles/{article_id}/comments ─────────────────────── */

func TestListHandler(t *testing.T) {
	created := time.Date(2020, 9, 26, 16, 16, 1, 0, time.UTC)
	mux := newMux(&stubCommentRepo{comments: []*entity.Comment{
		{CommentID: 31, ArticleID: 1, Votes: 11, CreatedAt: created, Author: "weegembump", Body: "Sit sequi sapiente."},
		{CommentID: 33, ArticleID: 1, Votes: 4, CreatedAt: created.Add(-time.Hour), Author: "cooljmessy", Body: "Explicabo perspiciatis."},
	}}, &stubArticleRepo{exists: true})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/articles/1/comments", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var result map[string][]comment.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	comments := result["comments"]
	if len(comments) != 2 {
		t.Fatalf("len(comments) = %d, want 2", len(comments))
	}
	if comments[0].CommentID != 31 {
		t.Errorf("comments[0].CommentID = %d", comments[0].CommentID)
	}
	if comments[0].ArticleID != 1 {
		t.Errorf("comments[0].ArticleID = %d", comments[0].ArticleID)
	}
}

func TestListHandler_EmptyForExistingArticle(t *testing.T) {
	mux := newMux(&stubCommentRepo{comments: []*entity.Comment{}}, &stubArticleRepo{exists: true})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/articles/2/comments", nil))

	// No comments on a real article is success, not absence.
	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "{\"comments\":[]}\n" {
		t.Fatalf("body = %q", got)
	}
}

func TestListHandler_MissingArticle(t *testing.T) {
	comments := &stubCommentRepo{}
	mux := newMux(comments, &stubArticleRepo{exists: false})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/articles/9999/comments", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := decodeMsg(t, rr); got != "Not found" {
		t.Errorf("msg = %q, want \"Not found\"", got)
	}
	if comments.listCalled {
		t.Error("comment store was queried for a missing article")
	}
}

func TestListHandler_InvalidID(t *testing.T) {
	mux := newMux(&stubCommentRepo{}, &stubArticleRepo{exists: true})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/articles/not-an-id/comments", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := decodeMsg(t, rr); got != "Invalid data type" {
		t.Errorf("msg = %q, want \"Invalid data type\"", got)
	}
}

/* ─────────────────────── POST /api/articles/{article_id}/comments ─────────────────────── */

func TestCreateHandler(t *testing.T) {
	mux := newMux(&stubCommentRepo{}, &stubArticleRepo{exists: true})

	req := httptest.NewRequest(http.MethodPost, "/api/articles/1/comments",
		strings.NewReader(`{"username": "weegembump", "body": "Great read."}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}

	var result map[string]comment.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	created, ok := result["comment"]
	if !ok {
		t.Fatal("response has no comment key")
	}
	if created.Author != "weegembump" || created.Body != "Great read." {
		t.Errorf("created = %+v", created)
	}
	if created.Votes != 0 {
		t.Errorf("Votes = %d, want 0 on a fresh comment", created.Votes)
	}
	if created.ArticleID != 1 {
		t.Errorf("ArticleID = %d, want 1", created.ArticleID)
	}
}

func TestCreateHandler_MissingArticleBeatsBadPayload(t *testing.T) {
	// Both failures apply; the parent check runs first so 404 wins over 422.
	comments := &stubCommentRepo{}
	mux := newMux(comments, &stubArticleRepo{exists: false})

	req := httptest.NewRequest(http.MethodPost, "/api/articles/9999/comments",
		strings.NewReader(`{"username": "weegembump"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := decodeMsg(t, rr); got != "Not found" {
		t.Errorf("msg = %q, want \"Not found\"", got)
	}
	if comments.insertCalled {
		t.Error("insert attempted for a missing article")
	}
}

func TestCreateHandler_UnprocessablePayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing body", body: `{"username": "weegembump"}`},
		{name: "missing username", body: `{"body": "Great read."}`},
		{name: "empty fields", body: `{"username": "", "body": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &stubCommentRepo{}
			mux := newMux(comments, &stubArticleRepo{exists: true})

			req := httptest.NewRequest(http.MethodPost, "/api/articles/1/comments", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
			}
			if got := decodeMsg(t, rr); got != "Unprocessable entity" {
				t.Errorf("msg = %q, want \"Unprocessable entity\"", got)
			}
			if comments.insertCalled {
				t.Error("insert attempted for an unprocessable payload")
			}
		})
	}
}

func TestCreateHandler_UndecodableBody(t *testing.T) {
	mux := newMux(&stubCommentRepo{}, &stubArticleRepo{exists: true})

	req := httptest.NewRequest(http.MethodPost, "/api/articles/1/comments", strings.NewReader(`not json`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := decodeMsg(t, rr); got != "Bad request" {
		t.Errorf("msg = %q, want \"Bad request\"", got)
	}
}

func TestCreateHandler_InvalidID(t *testing.T) {
	mux := newMux(&stubCommentRepo{}, &stubArticleRepo{exists: true})

	req := httptest.NewRequest(http.MethodPost, "/api/articles/not-an-id/comments",
		strings.NewReader(`{"username": "weegembump", "body": "Great read."}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := decodeMsg(t, rr); got != "Invalid data type" {
		t.Errorf("msg = %q, want \"Invalid data type\"", got)
	}
}

/* ─────────────────────── DELETE /api/comments/{comment_id} ─────────────────────── */

func TestDeleteHandler(t *testing.T) {
	mux := newMux(&stubCommentRepo{deleted: true}, &stubArticleRepo{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/comments/31", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rr.Body.String())
	}
}

func TestDeleteHandler_MissingComment(t *testing.T) {
	mux := newMux(&stubCommentRepo{deleted: false}, &stubArticleRepo{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/comments/9999", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := decodeMsg(t, rr); got != "Not found" {
		t.Errorf("msg = %q, want \"Not found\"", got)
	}
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	mux := newMux(&stubCommentRepo{}, &stubArticleRepo{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/comments/not-an-id", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := decodeMsg(t, rr); got != "Invalid data type" {
		t.Errorf("msg = %q, want \"Invalid data type\"", got)
	}
}
