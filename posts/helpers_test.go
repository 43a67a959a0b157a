package posts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
)

// memPostStore is an in-memory PostStore. Posts may only reference authors
// registered in authors, mirroring the foreign key.
type memPostStore struct {
	mu      sync.Mutex
	authors map[uuid.UUID]bool
	posts   []Post
	creates int
	clock   time.Time
	err     error
	lastQ   ListQuery
}

func newMemPostStore(authors ...uuid.UUID) *memPostStore {
	s := &memPostStore{
		authors: make(map[uuid.UUID]bool),
		clock:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, id := range authors {
		s.authors[id] = true
	}
	return s
}

func (s *memPostStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.err != nil {
		return nil, s.err
	}
	if !s.authors[post.AuthorID] {
		return nil, apperror.NewNotFoundError("Author not found", nil)
	}
	s.clock = s.clock.Add(time.Minute)
	post.CreatedAt = s.clock
	s.posts = append(s.posts, *post)
	return post, nil
}

func (s *memPostStore) GetPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, apperror.NewNotFoundError("post not found", nil)
}

func (s *memPostStore) ListPosts(ctx context.Context, q ListQuery) ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQ = q
	if s.err != nil {
		return nil, s.err
	}
	var out []Post
	for _, p := range s.posts {
		if q.AuthorID == nil || p.AuthorID == *q.AuthorID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if q.Offset >= len(out) {
		return nil, nil
	}
	out = out[q.Offset:]
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

var errBoom = errors.New("boom")
