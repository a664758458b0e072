package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"unique;not null"`
	Password    string    `json:"-" gorm:"not null"`
	IsAdmin     bool      `json:"isAdmin" gorm:"default:false"`
	AccountType string    `json:"accountType" gorm:"default:'member'"`
	Business    *Business `json:"business,omitempty"`
}
