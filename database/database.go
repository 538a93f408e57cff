package database

import (
	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/domain/slides"
	"storefront-cms/internal/domain/users"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Translated errors let handlers match gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated instead of driver-specific codes.
		TranslateError: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		logrus.Fatal("AutoMigrate error: ", err)
	}

	logrus.Info("Connected and migrated successfully")
}

// Migrate is shared with the sqlite-backed test harness.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&media.Media{},
		&slides.Slide{},
		&catalog.Product{},
		&articles.Article{},
		&articles.ContentBlock{},
	)
}
