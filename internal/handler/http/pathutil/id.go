package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when the ID segment of a URL path is not an integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses the ID segment extracted from a URL path.
//
// Any syntactically valid integer is accepted, including zero and negatives;
// whether such an ID refers to anything is a lookup concern, not a parsing
// one. Non-numeric input yields ErrInvalidID.
//
// Example:
//
//	id, err := ParseID(r.PathValue("article_id"))
//	// "/api/articles/123" returns: 123, nil
//	// "/api/articles/abc" returns: 0, ErrInvalidID
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
