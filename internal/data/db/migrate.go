package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/questline-backend/internal/domain"
	"github.com/yungbote/questline-backend/internal/domain/user"
)

// AutoMigrateAll creates the tables this server reads and writes, plus the
// media tables the user cascade deletes from. Production schemas for the
// media tables are owned elsewhere; migrating them is for development and
// integration tests.
//
// Owning tables come first. Gorm attaches a has-many constraint to the child
// schema only once the parent has been parsed, and SQLite can only declare
// foreign keys in CREATE TABLE.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// owners
		&types.UserLevel{},
		&types.User{},
		&types.DistanceQuest{},
		&types.ImageQuest{},
		&types.MediaItem{},
		&types.Tag{},

		// progress
		&types.UserQuest{},
		&types.UserImageQuest{},

		// media (externally owned)
		&types.MediaItemTag{},
		&types.Comment{},
		&types.Like{},
		&types.Rating{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedUserLevels inserts the fixed level rows; existing rows are left alone.
func SeedUserLevels(db *gorm.DB) error {
	levels := append([]user.Level(nil), user.Levels...)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&levels).Error; err != nil {
		return fmt.Errorf("seed user levels: %w", err)
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := AutoMigrateAll(db); err != nil {
		return err
	}
	return SeedUserLevels(db)
}
