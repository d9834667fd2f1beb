package database

import (
	"github.com/tonipcv/adm-news/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.News{})
}
