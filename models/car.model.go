package models

import (
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	CarModel string `json:"model" gorm:"column:model;not null"`
	Make     string `json:"make" gorm:"not null"`
	RegNo    string `json:"regNo" gorm:"column:reg_no;not null"` // immutable after create
	Category string `json:"category" gorm:"not null"`
	AddedBy  uint   `json:"addedBy" gorm:"not null;index"` // owning user, immutable after create
	Image    string `json:"image"`

	AddedByUser User `json:"-" gorm:"foreignKey:AddedBy"`
}
