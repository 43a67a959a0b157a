package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/auth"
)

// UserHandlers provides HTTP handlers for user profiles.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes mounts the profile endpoints. Both routes need a session,
// so tokens guards the whole sub-router.
func (h *UserHandlers) RegisterRoutes(tokens *auth.TokenIssuer) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(auth.RequireSession(tokens))
		r.Get("/me", h.HandleGetUserProfile())
		r.Get("/{id}", h.HandleGetUserByID())
	}
}

// HandleGetUserProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile of the user owning the session.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileResponse "Successfully retrieved user profile"
// @Failure 401 {object} apperror.ErrorResponse "Not logged in"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/users/me [get]
func (h *UserHandlers) HandleGetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			apperror.WriteError(w, r, apperror.NewAuthError("Not logged in", nil))
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), userID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ProfileResponse{Success: true, User: *profile})
	}
}

// HandleGetUserByID godoc
// @Summary Get a user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} users.ProfileResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid user id"
// @Failure 401 {object} apperror.ErrorResponse "Not logged in"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func (h *UserHandlers) HandleGetUserByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.service.GetUserProfileByParam(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ProfileResponse{Success: true, User: *profile})
	}
}
