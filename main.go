package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tonipcv/adm-news/config"
	"github.com/tonipcv/adm-news/database"
	"github.com/tonipcv/adm-news/routes"
	"github.com/tonipcv/adm-news/services"
	"github.com/tonipcv/adm-news/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Устанавливаем глобальный *gorm.DB для контроллеров и страниц
	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Демо-данные по флагу окружения
	if cfg.SeedDemoData {
		if err := database.SeedNews(db); err != nil {
			log.Printf("failed to seed demo news: %v", err)
		}
	}

	// Клиент объектного хранилища
	storage, err := services.NewMinioStorage(cfg)
	if err != nil {
		log.Fatalf("failed to create storage client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storage.EnsureBucket(ctx); err != nil {
		// без бакета загрузки будут падать, но чтение новостей работает
		log.Printf("bucket check failed: %v", err)
	}
	cancel()

	r := routes.SetupRouter(storage)

	log.Printf("News portal listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
