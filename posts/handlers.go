package posts

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/validate"
)

// Handlers exposes PostService over HTTP.
type Handlers struct {
	service *PostService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *PostService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the post endpoints on router, which is expected to
// be the `/api` sub-router.
func (h *Handlers) RegisterRoutes(router chi.Router) {
	router.Post("/post", h.HandleCreatePost())
	router.Get("/post/{id}", h.HandleGetPost())
	router.Get("/posts", h.HandleListPosts())
}

// HandleCreatePost godoc
// @Summary Create a post
// @Description Creates a post for an existing author. The slug is derived from the title.
// @Tags Posts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param postBody body posts.CreatePostRequest true "Post details"
// @Success 200 {object} posts.PostResponse "Post created"
// @Failure 400 {object} apperror.ErrorResponse "Please enter all the fields"
// @Failure 404 {object} apperror.ErrorResponse "Author not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/post [post]
func (h *Handlers) HandleCreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest
		if err := validate.Request(w, r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		post, err := h.service.CreatePost(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusOK, PostResponse{Success: true, Post: *post})
	}
}

// HandleGetPost godoc
// @Summary Get a post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} posts.PostResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid post id"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Router /api/post/{id} [get]
func (h *Handlers) HandleGetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, PostResponse{Success: true, Post: *post})
	}
}

// HandleListPosts godoc
// @Summary List posts
// @Description Lists posts newest first, optionally filtered by author.
// @Tags Posts
// @Produce json
// @Param authorId query string false "Author ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Number of posts to skip"
// @Success 200 {object} posts.PostListResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid query parameter"
// @Router /api/posts [get]
func (h *Handlers) HandleListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseListQuery(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		posts, err := h.service.ListPosts(r.Context(), q)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, PostListResponse{Success: true, Posts: posts})
	}
}

func parseListQuery(r *http.Request) (ListQuery, error) {
	params := r.URL.Query()
	var q ListQuery

	if raw := params.Get("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, apperror.NewBadRequestError("Invalid authorId", err)
		}
		q.AuthorID = &id
	}
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, apperror.NewBadRequestError("Invalid limit", err)
		}
		q.Limit = n
	}
	if raw := params.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, apperror.NewBadRequestError("Invalid offset", err)
		}
		q.Offset = n
	}
	return q, nil
}
