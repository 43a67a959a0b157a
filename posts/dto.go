package posts

import "github.com/google/uuid"

// CreatePostRequest is the body of POST /api/post.
// AuthorID is kept as a string so a missing value is reported as a missing
// field rather than a decode error.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,nonul" example:"My First Post"`
	Body     string `json:"body" validate:"required,nonul" example:"hi"`
	AuthorID string `json:"authorId" validate:"required,nonul" example:"0b7e5c3a-1d2f-4a6b-9c8d-7e6f5a4b3c2d"`
}

// ListQuery selects a page of posts, optionally for a single author.
type ListQuery struct {
	AuthorID *uuid.UUID
	Limit    int
	Offset   int
}

// PostResponse wraps a single post.
type PostResponse struct {
	Success bool `json:"success" example:"true"`
	Post    Post `json:"post"`
}

// PostListResponse wraps a page of posts, newest first.
type PostListResponse struct {
	Success bool   `json:"success" example:"true"`
	Posts   []Post `json:"posts"`
}
