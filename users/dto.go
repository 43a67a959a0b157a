// Package users serves user profiles: the public view of a user plus a few
// aggregates computed from their posts.
package users

import (
	"github.com/user/quill-go/auth"
)

// Profile is the public projection of a user with their post count.
// The embedded PublicUser keeps the password hash out of every profile response.
type Profile struct {
	auth.PublicUser
	PostCount int `json:"postCount" example:"3"`
}

// ProfileResponse wraps a profile under the `user` key, matching the session responses.
type ProfileResponse struct {
	Success bool    `json:"success" example:"true"`
	User    Profile `json:"user"`
}
