package postgres

import (
	"log/slog"

	"critique/config"
	"critique/internal/errors"
	"critique/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies for running schema migrations.
type MigrateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Migrate aligns the database schema with the persistence models and
// optionally seeds a starter catalog. The models default their primary keys
// to uuid_generate_v4(), which lives in the uuid-ossp extension.
func Migrate(params MigrateParams) error {
	db := params.DB

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid-ossp extension")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ItemModel{},
		&model.ReviewModel{},
		&model.CommentModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	params.Logger.Info("database schema migrated")

	if params.Config.Seed != nil && params.Config.Seed.Enabled {
		if err := seedCatalog(db, params.Logger); err != nil {
			return err
		}
	}

	return nil
}

// seedCatalog inserts a few starter items so a fresh environment has
// something to review. FirstOrCreate keys on the unique title, so reruns
// do not duplicate rows.
func seedCatalog(db *gorm.DB, logger *slog.Logger) error {
	seeds := []model.ItemModel{
		{Title: "Espresso Machine", Details: "Dual boiler, PID temperature control."},
		{Title: "Mechanical Keyboard", Details: "75 percent layout with hot-swappable switches."},
		{Title: "Trail Running Shoes", Details: "Grippy outsole, 8mm drop."},
	}

	for i := range seeds {
		if err := db.Where("title = ?", seeds[i].Title).FirstOrCreate(&seeds[i]).Error; err != nil {
			return errors.Wrapf(err, "failed to seed item %q", seeds[i].Title)
		}
	}

	logger.Info("catalog seeded", slog.Int("items", len(seeds)))

	return nil
}
