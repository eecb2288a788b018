package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/partymatch/docs"
	"github.com/fkhayef/partymatch/internal/config"
	"github.com/fkhayef/partymatch/internal/group"
	"github.com/fkhayef/partymatch/internal/notification"
	"github.com/fkhayef/partymatch/internal/profile"
	mw "github.com/fkhayef/partymatch/pkg/middleware"
)

type routeHandlers struct {
	group    *group.Handler
	profile  *profile.Handler
	notifier *notification.Handler
}

func newRouter(cfg *config.Config, h routeHandlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Group snapshots carry profile ids, which are session ids
	if cfg.DebugRoutes {
		r.Get("/debug/groups", h.group.ListGroups)
	}

	r.Mount("/notifierServer", h.notifier.Routes())

	// Game client routes
	r.Group(func(r chi.Router) {
		r.Use(mw.SessionMiddleware)

		r.Mount("/client/match", h.group.Routes())
		r.Mount("/client/profile", h.profile.Routes())
	})

	return r
}
