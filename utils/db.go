package utils

import "gorm.io/gorm"

// глобальный *gorm.DB, разделяемый контроллерами и страницами
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
