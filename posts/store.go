package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/db"
)

// PostStore persists posts. Errors are *apperror.AppError values.
type PostStore interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPosts(ctx context.Context, q ListQuery) ([]Post, error)
}

// PgPostStore is the PostgreSQL implementation of PostStore.
type PgPostStore struct {
	dbPool *pgxpool.Pool
}

// NewPgPostStore creates a PgPostStore on top of the shared pool.
func NewPgPostStore(dbPool *pgxpool.Pool) *PgPostStore {
	return &PgPostStore{dbPool: dbPool}
}

const postColumns = `id, slug, title, body, author_id, created_at`

// CreatePost inserts post. The author reference is checked by the foreign key,
// not by a lookup beforehand.
func (s *PgPostStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	query := `INSERT INTO posts (id, slug, title, body, author_id)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING created_at`
	err := s.dbPool.QueryRow(ctx, query, post.ID, post.Slug, post.Title, post.Body, post.AuthorID).Scan(&post.CreatedAt)
	if err != nil {
		if _, ok := db.ForeignKeyViolation(err); ok {
			return nil, apperror.NewNotFoundError("Author not found", err)
		}
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	return post, nil
}

// GetPostByID retrieves a single post.
func (s *PgPostStore) GetPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(s.dbPool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("post with ID %s not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return &post, nil
}

// ListPosts returns a page of posts ordered newest first.
func (s *PgPostStore) ListPosts(ctx context.Context, q ListQuery) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
              WHERE ($1::uuid IS NULL OR author_id = $1)
              ORDER BY created_at DESC, id
              LIMIT $2 OFFSET $3`
	rows, err := s.dbPool.Query(ctx, query, q.AuthorID, q.Limit, q.Offset)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Post, error) {
		return scanPost(row)
	})
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	return posts, nil
}

func scanPost(row pgx.Row) (Post, error) {
	var post Post
	err := row.Scan(&post.ID, &post.Slug, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt)
	return post, err
}
