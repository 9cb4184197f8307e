package contestmigrations

import (
	"context"
	"fmt"

	contestdb "github.com/artfest/gallery-api/app/modules/contest/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating contest_settings table...")

		if _, err := db.NewCreateTable().Model((*contestdb.ContestSettings)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping contest_settings table...")

		if _, err := db.NewDropTable().Model((*contestdb.ContestSettings)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
