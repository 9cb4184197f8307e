package commentmigrations

import (
	"context"
	"fmt"

	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating comments table...")

		if _, err := db.NewCreateTable().Model((*commentdb.Comment)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*commentdb.Comment)(nil)).
			Index("idx_comments_artwork_id").
			Column("artwork_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping comments table...")

		if _, err := db.NewDropTable().Model((*commentdb.Comment)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
