package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern pairs a compiled route regex with its normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/-?\d+/comments$`), Template: "/api/articles/:article_id/comments"},
	{Pattern: regexp.MustCompile(`^/api/articles/-?\d+$`), Template: "/api/articles/:article_id"},
	{Pattern: regexp.MustCompile(`^/api/comments/-?\d+$`), Template: "/api/comments/:comment_id"},
}

// NormalizePath collapses dynamic URL paths into route templates so that
// per-path metrics labels stay at a fixed cardinality. IDs are replaced
// (e.g. /api/articles/123 becomes /api/articles/:article_id); static paths
// pass through unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/api/articles/123?page=1")  // "/api/articles/:article_id"
//	NormalizePath("/api/topics/")              // "/api/topics"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths such as /api/topics, /health and /metrics fall through.
	return path
}
