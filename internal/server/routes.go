package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lootvalue/pkg/httpx/reply"
	"lootvalue/pkg/logx"
	"lootvalue/pkg/middlewarex"
)

// Handler собирает роутер со всеми middleware.
func (s Server) Handler(
	log *slog.Logger,
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/appraisals", handler(s.postV1Appraisals))
		r.Get("/items/{id}/appraisal", handler(s.getV1ItemAppraisal))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
