package main

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/user/quill-go/docs" // Generated Swagger docs

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/auth"
	"github.com/user/quill-go/config"
	"github.com/user/quill-go/feed"
	"github.com/user/quill-go/posts"
	"github.com/user/quill-go/users"
)

const requestTimeout = 60 * time.Second

// stores is the persistence layer the handlers are built on.
// main fills it with the pgx implementations; tests use in-memory ones.
type stores struct {
	users    auth.UserStore
	posts    posts.PostStore
	profiles users.ProfileStore
}

// app holds everything the router needs, built once from the configuration.
type app struct {
	tokens *auth.TokenIssuer
	feed   *feed.Broadcaster
	auth   *auth.Handlers
	users  *users.UserHandlers
	posts  *posts.Handlers
}

// newApp wires services and handlers. This is manual dependency injection:
// every component receives exactly the configuration and store it uses.
func newApp(cfg *config.AppConfig, s stores) *app {
	tokens := auth.NewTokenIssuer(*cfg.Auth)
	broadcaster := feed.NewBroadcaster()

	authService := auth.NewAuthService(s.users, auth.NewBcryptHasher(cfg.Auth.BcryptCost))
	sessions := auth.NewSessionResponder(tokens, cfg.Auth.CookieSecure)
	postService := posts.NewPostService(s.posts, posts.PublishTo(broadcaster))

	return &app{
		tokens: tokens,
		feed:   broadcaster,
		auth:   auth.NewHandlers(authService, sessions),
		users:  users.NewUserHandlers(users.NewUserService(s.profiles)),
		posts:  posts.NewHandlers(postService),
	}
}

// newRouter builds the chi router with the global middleware stack and every route.
func newRouter(cfg *config.ServerConfig, a *app) chi.Router {
	r := chi.NewRouter()

	// IMPORTANT: Chi requires all middleware to be registered before any routes
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// Runs inside Recoverer, so a handler panic still gets the JSON error body.
	r.Use(recoverJSON)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// The event stream is long-lived, so it stays out of the timeout and throttle group.
	r.Get("/api/posts/stream", feed.HandleStream(a.feed))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.Throttle(cfg.MaxConcurrentRequests))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("Hello World!"))
		})

		r.Route("/api", func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", a.auth.HandleRegister())
				r.Post("/login", a.auth.HandleLogin())
				r.Post("/logout", a.auth.HandleLogout())
			})
			r.Route("/users", a.users.RegisterRoutes(a.tokens))
			a.posts.RegisterRoutes(r)
		})
	})

	return r
}

// recoverJSON turns a handler panic into the standard 500 error body,
// so no request ends without a response.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Printf("[%s] panic: %v\n%s", middleware.GetReqID(r.Context()), rvr, debug.Stack())
				apperror.WriteError(w, r, apperror.NewInternalError("internal server error", fmt.Errorf("panic: %v", rvr)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
