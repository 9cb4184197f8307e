package artworkmigrations

import (
	"context"
	"fmt"

	artworkdb "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating artworks table...")

		if _, err := db.NewCreateTable().Model((*artworkdb.Artwork)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*artworkdb.Artwork)(nil)).
			Index("idx_artworks_approved").
			Column("approved").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping artworks table...")

		if _, err := db.NewDropTable().Model((*artworkdb.Artwork)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
