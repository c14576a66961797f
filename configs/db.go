package configs

import (
	"github.com/DHANUSH-web/commercial-catalog/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the SQLite database and migrates the schema.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := SetupDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Establishment{},
		&entity.Attachment{},
	)
}
