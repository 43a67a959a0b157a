package apperror

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// WriteJSON serializes `data` to JSON and writes it with the given `status`.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Avoid writing nil, which would result in a "null" response body.
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent at this point; all we can do is log.
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError converts any error into the standard `{success:false, message}` body.
// Errors that are not already an *AppError are treated as internal errors and
// their details are kept out of the response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("an unexpected error occurred", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, appErr)
	}

	WriteJSON(w, status, appErr.ToResponse())
}
