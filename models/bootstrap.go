package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the bootstrap "admin" account on first boot so a
// fresh deployment is reachable. The password comes from configuration and
// should be rotated immediately after the first login.
func EnsureAdminUser(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&User{}).Where("user_name = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		UserName: "admin",
		FullName: "Admin",
		Role:     "Admin",
		Password: string(hash),
	}
	return db.Create(&admin).Error
}
