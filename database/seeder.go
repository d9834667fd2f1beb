package database

import (
	"time"

	"github.com/tonipcv/adm-news/models"

	"gorm.io/gorm"
)

// SeedNews проверяет таблицу news и, если она пуста, заполняет её демо-новостями
func SeedNews(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.News{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Уже есть новости, ничего не делаем
	}
	now := time.Now()
	items := []models.News{
		{
			Title:       "Welcome to the portal",
			Summary:     "First steps with the admin console",
			Content:     "## Welcome\n\nOpen `/admin` to create, edit and delete articles.",
			PublishedAt: now.Add(-2 * time.Hour),
		},
		{
			Title:       "Markdown is supported",
			Summary:     "Article bodies are stored as markdown",
			Content:     "Write **bold**, _italic_ and `code` in the content field.",
			PublishedAt: now.Add(-1 * time.Hour),
		},
		{
			Title:       "Pro content example",
			Summary:     "",
			Content:     "This article is only highlighted for premium readers.",
			PublishedAt: now,
			IsPro:       true,
		},
	}
	return db.Create(&items).Error
}
