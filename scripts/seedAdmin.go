package main

import (
	"claimit/config"
	"claimit/database"
	"claimit/models"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the first admin account. Usage:
//
//	go run scripts/seedAdmin.go <email> <password>
func main() {
	if len(os.Args) != 3 {
		log.Fatal("Usage: go run scripts/seedAdmin.go <email> <password>")
	}
	email := os.Args[1]
	password := os.Args[2]

	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		log.Fatalf("Account %s already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Role:     models.RoleAdmin,
		Password: string(hashed),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: admin.ID}).Error
	})
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	log.Printf("Admin account %s created with id %d", email, admin.ID)
}
