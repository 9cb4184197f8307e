package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/artfest/gallery-api/app/eventbus"
	"github.com/artfest/gallery-api/app/events"
	"github.com/artfest/gallery-api/app/metrics"
	artworkservice "github.com/artfest/gallery-api/app/modules/artwork/application"
	artworkhandlers "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/handlers"
	commentservice "github.com/artfest/gallery-api/app/modules/comment/application"
	commenthandlers "github.com/artfest/gallery-api/app/modules/comment/infrastructure/handlers"
	contestservice "github.com/artfest/gallery-api/app/modules/contest/application"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	contesthandlers "github.com/artfest/gallery-api/app/modules/contest/infrastructure/handlers"
	contesttime "github.com/artfest/gallery-api/app/modules/contest/timeutil"
	ratingservice "github.com/artfest/gallery-api/app/modules/rating/application"
	ratinghandlers "github.com/artfest/gallery-api/app/modules/rating/infrastructure/handlers"
	userservice "github.com/artfest/gallery-api/app/modules/user/application"
	userhandlers "github.com/artfest/gallery-api/app/modules/user/infrastructure/handlers"
	"github.com/artfest/gallery-api/app/shared"
	"github.com/artfest/gallery-api/app/storage"
	"github.com/artfest/gallery-api/config"
	"github.com/artfest/gallery-api/db/bundb"
	"github.com/artfest/gallery-api/pkg/jwt"
)

// App bundles everything main needs to run and tear down.
type App struct {
	Config  *config.Config
	Router  http.Handler
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	db  *bundb.DBService
	bus shared.EventBus
}

// NewApp wires the full application: database, event bus, contest clock,
// services and the HTTP router. The countdown starts ticking before this
// returns.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := newEventBus(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	m := metrics.New()
	gate := contestdomain.NewGate()
	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	uploads := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.PublicBase, cfg.Uploads.MaxSizeBytes)

	ratingSvc := ratingservice.NewRatingService(
		dbService.RatingDB,
		gate,
		ratingservice.Bounds{Min: cfg.Contest.MinRating, Max: cfg.Contest.MaxRating},
		m,
		logger,
	)

	countdown := contestservice.NewCountdown(
		dbService.SettingsDB,
		ratingSvc,
		bus,
		gate,
		contestservice.RealClock{},
		cfg.Contest.TickInterval,
		logger,
	)
	if err := countdown.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start contest clock: %w", err)
	}

	contestSvc := contestservice.NewContestService(dbService.SettingsDB, ratingSvc, bus, countdown, logger)
	userSvc := userservice.NewUserService(dbService.UserDB, tokens, cfg.Auth.AdminEmails, logger)
	artworkSvc := artworkservice.NewArtworkService(dbService.ArtworkDB, ratingSvc, gate, uploads, m, logger)
	commentSvc := commentservice.NewCommentService(dbService.CommentDB, gate, m, logger)

	// Count contest endings as the bus sees them, local or remote.
	if _, err := bus.Subscribe(ctx, events.ContestEnded, func(_ context.Context, payload []byte) error {
		m.ContestEndings.Inc()

		var p events.ContestEndedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		logger.Info("Contest ended",
			slog.String("winner_artwork_id", p.WinnerArtworkID),
			slog.Int("winner_score", p.WinnerScore),
		)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to subscribe to contest endings: %w", err)
	}

	router := newRouter(routerDeps{
		cfg:      cfg,
		metrics:  m,
		gate:     gate,
		tokens:   tokens,
		userSvc:  userSvc,
		contest:  contesthandlers.NewHandlers(contestSvc, contesttime.NewEndTimeParser(), logger),
		users:    userhandlers.NewHandlers(userSvc, logger),
		artworks: artworkhandlers.NewHandlers(artworkSvc, logger),
		ratings:  ratinghandlers.NewHandlers(ratingSvc),
		comments: commenthandlers.NewHandlers(commentSvc, userSvc, logger),
	})

	return &App{
		Config:  cfg,
		Router:  router,
		Logger:  logger,
		Metrics: m,
		db:      dbService,
		bus:     bus,
	}, nil
}

// Close tears down the bus and the database pool.
func (a *App) Close() error {
	if err := a.bus.Close(); err != nil {
		a.Logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	return a.db.GetDB().Close()
}

// newEventBus picks NATS when a URL is configured and the in-process bus
// otherwise, so single-instance deployments need no broker.
func newEventBus(cfg *config.Config, logger *slog.Logger) (shared.EventBus, error) {
	if cfg.NATS.URL == "" {
		logger.Info("No NATS URL configured, using in-process event bus")
		return eventbus.NewChannelEventBus(logger), nil
	}
	return eventbus.NewNATSEventBus(cfg.NATS.URL, logger)
}
