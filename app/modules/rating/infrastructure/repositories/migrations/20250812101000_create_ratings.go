package ratingmigrations

import (
	"context"
	"fmt"

	ratingdb "github.com/artfest/gallery-api/app/modules/rating/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating ratings table...")

		if _, err := db.NewCreateTable().Model((*ratingdb.Rating)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*ratingdb.Rating)(nil)).
			Index("idx_ratings_artwork_id").
			Column("artwork_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping ratings table...")

		if _, err := db.NewDropTable().Model((*ratingdb.Rating)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
