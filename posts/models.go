// Package posts owns blog posts: slug derivation, persistence and the
// HTTP handlers for creating and reading them.
package posts

import (
	"time"

	"github.com/google/uuid"
)

// Post is a persisted blog post. AuthorID references users.id.
type Post struct {
	ID        uuid.UUID `json:"id" example:"6f1c2b9e-3a4d-4e5f-8a9b-0c1d2e3f4a5b"`
	Slug      string    `json:"slug" example:"my-first-post"`
	Title     string    `json:"title" example:"My First Post"`
	Body      string    `json:"body" example:"hi"`
	AuthorID  uuid.UUID `json:"authorId" example:"0b7e5c3a-1d2f-4a6b-9c8d-7e6f5a4b3c2d"`
	CreatedAt time.Time `json:"createdAt"`
}
