package bundb

import (
	"context"
	"database/sql"
	"fmt"

	artworkdb "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/repositories"
	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
	contestdb "github.com/artfest/gallery-api/app/modules/contest/infrastructure/repositories"
	ratingdb "github.com/artfest/gallery-api/app/modules/rating/infrastructure/repositories"
	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
	"github.com/artfest/gallery-api/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the per-module repositories over one connection pool.
type DBService struct {
	SettingsDB *contestdb.SettingsDBImpl
	RatingDB   *ratingdb.RatingDBImpl
	ArtworkDB  *artworkdb.ArtworkDBImpl
	CommentDB  *commentdb.CommentDBImpl
	UserDB     *userdb.UserDBImpl
	db         *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	dbService := &DBService{
		SettingsDB: &contestdb.SettingsDBImpl{DB: db},
		RatingDB:   &ratingdb.RatingDBImpl{DB: db},
		ArtworkDB:  &artworkdb.ArtworkDBImpl{DB: db},
		CommentDB:  &commentdb.CommentDBImpl{DB: db},
		UserDB:     &userdb.UserDBImpl{DB: db},
		db:         db,
	}

	db.RegisterModel(&contestdb.ContestSettings{})
	db.RegisterModel(&ratingdb.Rating{})
	db.RegisterModel(&artworkdb.Artwork{})
	db.RegisterModel(&commentdb.Comment{})
	db.RegisterModel(&userdb.User{})
	db.RegisterModel(&userdb.Profile{})

	return dbService, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
