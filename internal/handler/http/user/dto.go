// Package user provides HTTP handlers for user endpoints.
package user

// DTO represents the JSON structure for user data transfer.
type DTO struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
