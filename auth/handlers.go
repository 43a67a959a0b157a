// Package auth, as part of the authentication module.
// This file, `handlers.go`, is responsible for handling HTTP requests related to authentication.
// It acts as the "Controller" layer, analogous to an `AuthController` in Nest.js.
package auth

import (
	"net/http"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/validate"
)

// Handlers wraps the AuthService and SessionResponder to provide HTTP handlers
type Handlers struct {
	service  *AuthService
	sessions *SessionResponder
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *AuthService, sessions *SessionResponder) *Handlers {
	return &Handlers{service: service, sessions: sessions}
}

// The `godoc` comments (like `@Summary`, `@Tags`, etc.) are annotations read by
// `swaggo/swag` to generate the OpenAPI document served under /swagger.

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user, starts a session and sets the `token` cookie.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 200 {object} auth.SessionResponse "User created, session started"
// @Failure 400 {object} apperror.ErrorResponse "Please enter all the fields"
// @Failure 409 {object} apperror.ErrorResponse "Email is already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := validate.Request(w, r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		// Starting the session is the response; nothing else is written here.
		h.sessions.Respond(w, r, user)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials, starts a session and sets the `token` cookie.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.SessionResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Please enter all the fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid email or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := validate.Request(w, r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		user, err := h.service.Login(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		h.sessions.Respond(w, r, user)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Expires the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Router /api/auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Clear(w)
		apperror.WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Logged out"})
	}
}
