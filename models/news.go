package models

import "time"

// News хранит одну опубликованную новость портала
type News struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:VARCHAR(255);not null" json:"title"`
	Summary     string    `gorm:"type:TEXT;not null;default:''" json:"summary"`
	Content     string    `gorm:"type:TEXT;not null" json:"content"`
	Image       *string   `gorm:"type:TEXT" json:"image"`
	Video       *string   `gorm:"type:TEXT" json:"video"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	IsPro       bool      `gorm:"default:false" json:"isPro"`
}

func (News) TableName() string {
	return "news"
}
