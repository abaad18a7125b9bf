package main

import (
	"os"
	"time"

	"sipspot-be/internal/model"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedAdmin creates the bootstrap admin account if it does not exist yet.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@sipspot.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using the default. Change it immediately.")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash admin password: %v", err)
		return
	}

	now := time.Now()
	hashStr := string(hash)
	admin := model.User{
		Email:           email,
		PasswordHash:    &hashStr,
		FullName:        "SipSpot Admin",
		Role:            "admin",
		Status:          "active",
		EmailVerified:   true,
		EmailVerifiedAt: &now,
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Failed to create admin: %v", err)
		return
	}
	color.Green("Created admin account: %s", email)
}
