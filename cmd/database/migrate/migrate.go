package migration

import (
	entities2 "SipMate-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Wine{}); err != nil {
		log.Fatalf("Error migrating wine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.SavedWine{}); err != nil {
		log.Fatalf("Error migrating saved wine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.TastePreference{}); err != nil {
		log.Fatalf("Error migrating taste preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.ChatMessage{}); err != nil {
		log.Fatalf("Error migrating chat message database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.CommunityPost{}); err != nil {
		log.Fatalf("Error migrating community post database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.PostLike{}); err != nil {
		log.Fatalf("Error migrating post like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Comment{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.PremiumTransaction{}); err != nil {
		log.Fatalf("Error migrating premium transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
