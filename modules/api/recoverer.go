package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/refcode/pkg/logger"
)

// recoverer turns a handler panic into a JSON 500 and logs it through log.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rvr)
				}
				log.ErrorContext(r.Context(), "handler panicked",
					logger.Error(err),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				writeError(w, http.StatusInternalServerError, errInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
