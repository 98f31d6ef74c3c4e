package migration

import (
	"fmt"
	"log"

	"freezer-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.UserBootstrap{}); err != nil {
		log.Fatalf("Error migrating user bootstrap database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Freezer{}); err != nil {
		log.Fatalf("Error migrating freezer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
