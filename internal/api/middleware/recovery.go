package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Recovery: panic in %s %s request_id=%s: %v\n%s",
						r.Method, r.URL.Path, GetRequestID(r.Context()), err, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
