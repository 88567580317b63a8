// Package topic provides HTTP handlers for topic endpoints.
package topic

// DTO represents the JSON structure for topic data transfer.
type DTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
