package middlewarex

import (
	"log/slog"
	"net/http"

	"lootvalue/pkg/contextx"
	"lootvalue/pkg/logx"
)

// Logger кладёт в контекст запроса логгер с trace id, метод и URL.
// Должен стоять после TraceID.
func Logger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			l := base.With(
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.Path),
			)

			if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
				l = l.With(logx.Stringer(logx.FieldTraceID, traceID))
			}

			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, l)))
		})
	}
}
