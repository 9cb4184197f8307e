package usermigrations

import (
	"context"
	"fmt"

	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users and profiles tables...")

		if _, err := db.NewCreateTable().Model((*userdb.User)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*userdb.Profile)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*userdb.User)(nil)).
			Index("idx_users_email").
			Column("email").
			Unique().
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users and profiles tables...")

		if _, err := db.NewDropTable().Model((*userdb.Profile)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewDropTable().Model((*userdb.User)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
