package entity

// Topic represents an article category. Topics are read-only in this
// service; the slug is the natural key referenced by articles.
type Topic struct {
	Slug        string
	Description string
}
