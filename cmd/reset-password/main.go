package main

import (
	"flag"

	"go-mini-erp/internal/model"
	"go-mini-erp/pkg/database"
	"go-mini-erp/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Resets a user's password directly against the database. Meant for
// operators locked out of the API.
func main() {
	username := flag.String("username", "admin", "username to reset")
	newPassword := flag.String("password", "admin", "new password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.L().Warn(".env file not found, relying on system env")
	}

	db := database.ConnectDB()

	var user model.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		logger.L().WithError(err).Fatalf("user %s not found in database", *username)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.L().WithError(err).Fatal("failed to hash password")
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		logger.L().WithError(err).Fatal("failed to update password in DB")
	}

	logger.L().Infof("password for %s has been reset", *username)
}
