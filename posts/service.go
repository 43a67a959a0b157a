package posts

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/feed"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// PostService holds the post business rules on top of a PostStore.
type PostService struct {
	store     PostStore
	listeners []func(Post)
}

// NewPostService creates a new PostService. Every listener is called with
// each successfully created post, after it has been persisted.
func NewPostService(store PostStore, listeners ...func(Post)) *PostService {
	return &PostService{store: store, listeners: listeners}
}

// PublishTo returns a listener that broadcasts created posts as `post` events.
func PublishTo(b *feed.Broadcaster) func(Post) {
	return func(p Post) {
		data, err := json.Marshal(p)
		if err != nil {
			log.Printf("posts: encoding feed event for %s: %v", p.ID, err)
			return
		}
		b.Publish(feed.NewEvent("post", string(data)))
	}
}

// CreatePost derives the slug and persists the post for the given author.
// A malformed author id is a client error; an unknown one is reported by the store.
func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorId", err)
	}

	post := &Post{
		ID:       uuid.New(),
		Slug:     Slugify(req.Title),
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: authorID,
	}

	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		if _, ok := apperror.FromError(err); ok {
			return nil, err
		}
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	for _, notify := range s.listeners {
		notify(*created)
	}
	return created, nil
}

// GetPost looks up a post by its textual id.
func (s *PostService) GetPost(ctx context.Context, id string) (*Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid post id", err)
	}
	return s.store.GetPostByID(ctx, postID)
}

// ListPosts clamps the page size and returns an empty, non-nil slice when
// nothing matches.
func (s *PostService) ListPosts(ctx context.Context, q ListQuery) ([]Post, error) {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultListLimit
	case q.Limit > MaxListLimit:
		q.Limit = MaxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	posts, err := s.store.ListPosts(ctx, q)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}
