package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	applog "github.com/clubechip/signup-api/internal/platform/logging"
)

// ErrorBody is the JSON shape for errors rendered outside huma operations
// (router-level 404/405 and recovered panics).
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(ErrorBody{Code: code, Message: msg})
}

// NotFoundHandler renders a JSON 404 for unrouted paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found"); err != nil {
			applog.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler renders a JSON 405.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed"); err != nil {
			applog.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into structured 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					applog.LogError(r.Context(), "panic recovered", fmt.Errorf("%w\n%s", err, debug.Stack()))
					if writeErr := writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error"); writeErr != nil {
						applog.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
