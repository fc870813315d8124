package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `gorm:"column:name;not null"`
	Email    string `gorm:"column:email;unique;not null"`
	Password string `gorm:"column:password;not null"`
	Role     string `gorm:"column:role;default:user;not null"`
}
