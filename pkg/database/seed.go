package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/model"
)

// DefaultAdmin defines the initial publisher account.
type DefaultAdmin struct {
	Name     string
	Email    string
	Password string
}

func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		Name:     "Admin",
		Email:    "admin@bootcamp.local",
		Password: "Admin@123", // Change this in production!
	}
}

// Seed creates initial data for the database.
func Seed(db *gorm.DB) error {
	return SeedUsers(db)
}

// SeedUsers creates the default admin user if not exists.
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existing model.User
	result := db.Where("email = ?", admin.Email).First(&existing)
	if result.Error == nil {
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: string(hashedPassword),
		Role:     "publisher",
	}
	return db.Create(&user).Error
}
