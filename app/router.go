package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artfest/gallery-api/app/metrics"
	"github.com/artfest/gallery-api/app/middleware"
	artworkhandlers "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/handlers"
	commenthandlers "github.com/artfest/gallery-api/app/modules/comment/infrastructure/handlers"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	contesthandlers "github.com/artfest/gallery-api/app/modules/contest/infrastructure/handlers"
	ratinghandlers "github.com/artfest/gallery-api/app/modules/rating/infrastructure/handlers"
	userservice "github.com/artfest/gallery-api/app/modules/user/application"
	userhandlers "github.com/artfest/gallery-api/app/modules/user/infrastructure/handlers"
	"github.com/artfest/gallery-api/config"
	"github.com/artfest/gallery-api/pkg/jwt"
)

type routerDeps struct {
	cfg      *config.Config
	metrics  *metrics.Metrics
	gate     *contestdomain.Gate
	tokens   jwt.Service
	userSvc  userservice.Authorizer
	contest  *contesthandlers.Handlers
	users    *userhandlers.Handlers
	artworks *artworkhandlers.Handlers
	ratings  *ratinghandlers.Handlers
	comments *commenthandlers.Handlers
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	auth := middleware.Auth(deps.tokens)
	admin := middleware.RequireAdmin(deps.userSvc)
	gateOpen := middleware.GateOpen(deps.gate, deps.metrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", deps.users.SignUp)
		r.Post("/login", deps.users.SignIn)

		r.Get("/contest", deps.contest.GetStatus)

		r.Get("/artworks", deps.artworks.ListGallery)
		r.Get("/artworks/{id}", deps.artworks.Get)
		r.Get("/artworks/{id}/comments", deps.comments.List)

		// Authenticated, contest-gated mutations.
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Use(gateOpen)

			r.Post("/artworks", deps.artworks.Submit)
			r.Post("/artworks/{id}/image", deps.artworks.UploadImage)
			r.Post("/artworks/{id}/rating", deps.ratings.Set)
			r.Delete("/artworks/{id}/rating", deps.ratings.Remove)
			r.Post("/artworks/{id}/comments", deps.comments.Create)
		})

		// Authenticated reads stay available after the contest ends.
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/artworks/{id}/rating", deps.ratings.GetOwn)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth)
			r.Use(admin)

			r.Get("/artworks", deps.artworks.ListAll)
			r.Post("/artworks/{id}/approve", deps.artworks.Approve)
			r.Delete("/artworks/{id}", deps.artworks.Delete)
			r.Delete("/comments/{id}", deps.comments.Delete)
			r.Put("/contest/end-time", deps.contest.UpdateEndTime)
			r.Get("/standings.png", deps.contest.StandingsPNG)
			r.Get("/standings.xlsx", deps.contest.StandingsXLSX)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(deps.metrics.Registry, promhttp.HandlerOpts{}))

	// Serve stored images from disk.
	fileServer := http.StripPrefix(deps.cfg.Uploads.PublicBase, http.FileServer(http.Dir(deps.cfg.Uploads.Dir)))
	r.Get(deps.cfg.Uploads.PublicBase+"/*", fileServer.ServeHTTP)

	return r
}
