package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Responder writes the reply to a request whose handler panicked. The web
// surface answers with an HTML page, the API with a JSON error body.
type Responder func(w http.ResponseWriter, r *http.Request)

// Recovery stops a panicking handler from taking down the server and
// answers with respond, or a plain 500 when respond is nil.
//
// The panic value and stack go to the log only. Request bodies are never
// logged, since a login form carries the player's password.
func Recovery(logger *slog.Logger, respond Responder) func(http.Handler) http.Handler {
	if respond == nil {
		respond = PlainInternalError
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				// net/http uses this panic to abort a response on purpose
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "handler panicked",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
				)
				respond(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// PlainInternalError replies with a text 500
func PlainInternalError(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
