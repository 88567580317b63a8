package entity

// User represents a registered author. Users are read-only in this service;
// the username is the natural key referenced by articles and comments.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
