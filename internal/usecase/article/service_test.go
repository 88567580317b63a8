package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/usecase/article"
)

/* ─────────────────────────── stub repository ─────────────────────────── */

type stubArticleRepo struct {
	article   *entity.Article
	summaries []repository.ArticleSummary
	updated   *entity.Article
	exists    bool
	count     int64
	err       error

	gotDelta int
}

func (s *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.article != nil && s.article.ArticleID == id {
		return s.article, nil
	}
	return nil, nil
}

func (s *stubArticleRepo) ListWithCommentCount(_ context.Context) ([]repository.ArticleSummary, error) {
	return s.summaries, s.err
}

func (s *stubArticleRepo) AddVotes(_ context.Context, _ int64, delta int) (*entity.Article, error) {
	s.gotDelta = delta
	return s.updated, s.err
}

func (s *stubArticleRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return s.exists, s.err
}

func (s *stubArticleRepo) Count(_ context.Context) (int64, error) {
	return s.count, s.err
}

/* ─────────────────────────── Get ─────────────────────────── */

func TestService_Get(t *testing.T) {
	want := &entity.Article{ArticleID: 1, Title: "t", CreatedAt: time.Now()}
	svc := article.Service{Repo: &stubArticleRepo{article: want}}

	got, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != want {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := article.Service{Repo: &stubArticleRepo{}}

	_, err := svc.Get(context.Background(), 9999)
	if !errors.Is(err, article.ErrArticleNotFound) {
		t.Fatalf("err = %v, want ErrArticleNotFound", err)
	}

	var reqErr *entity.RequestError
	if !errors.As(err, &reqErr) || reqErr.Status != 404 || reqErr.Msg != "Not found" {
		t.Fatalf("err = %v, want a 404 \"Not found\" request error", err)
	}
}

func TestService_Get_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := article.Service{Repo: &stubArticleRepo{err: repoErr}}

	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped repo error", err)
	}
}

/* ─────────────────────────── AddVotes ─────────────────────────── */

func TestService_AddVotes(t *testing.T) {
	updated := &entity.Article{ArticleID: 1, Votes: 110}
	stub := &stubArticleRepo{updated: updated}
	svc := article.Service{Repo: stub}

	got, err := svc.AddVotes(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("AddVotes err=%v", err)
	}
	if got.Votes != 110 {
		t.Fatalf("Votes = %d, want 110", got.Votes)
	}
	if stub.gotDelta != 10 {
		t.Fatalf("delta passed to repo = %d, want 10", stub.gotDelta)
	}
}

func TestService_AddVotes_NotFound(t *testing.T) {
	svc := article.Service{Repo: &stubArticleRepo{}}

	_, err := svc.AddVotes(context.Background(), 9999, 1)
	if !errors.Is(err, article.ErrArticleNotFound) {
		t.Fatalf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestService_AddVotes_NegativeDelta(t *testing.T) {
	stub := &stubArticleRepo{updated: &entity.Article{ArticleID: 1, Votes: -5}}
	svc := article.Service{Repo: stub}

	got, err := svc.AddVotes(context.Background(), 1, -100)
	if err != nil {
		t.Fatalf("AddVotes err=%v", err)
	}
	// Votes may go negative; the service imposes no floor.
	if got.Votes != -5 {
		t.Fatalf("Votes = %d, want -5", got.Votes)
	}
	if stub.gotDelta != -100 {
		t.Fatalf("delta passed to repo = %d, want -100", stub.gotDelta)
	}
}

/* ─────────────────────────── Exists ─────────────────────────── */

func TestService_Exists(t *testing.T) {
	svc := article.Service{Repo: &stubArticleRepo{exists: true}}
	if err := svc.Exists(context.Background(), 1); err != nil {
		t.Fatalf("Exists err=%v", err)
	}
}

func TestService_Exists_NotFound(t *testing.T) {
	svc := article.Service{Repo: &stubArticleRepo{exists: false}}
	if err := svc.Exists(context.Background(), 9999); !errors.Is(err, article.ErrArticleNotFound) {
		t.Fatalf("err = %v, want ErrArticleNotFound", err)
	}
}

/* ─────────────────────────── List ─────────────────────────── */

func TestService_List(t *testing.T) {
	summaries := []repository.ArticleSummary{
		{ArticleID: 1, CommentCount: "2"},
		{ArticleID: 2, CommentCount: "0"},
	}
	svc := article.Service{Repo: &stubArticleRepo{summaries: summaries}}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
}
