package models

import (
	"gorm.io/gorm"
)

// Business is the optional business profile owned by a user. Locations,
// review links and reviews hang off it as owned rows; deleting a parent
// removes the whole subtree, nothing outside it.
type Business struct {
	gorm.Model
	UserID    uint       `json:"-" gorm:"not null;index"`
	Name      string     `json:"name"`
	Logo      string     `json:"logo"`
	Locations []Location `json:"locations" gorm:"constraint:OnDelete:CASCADE"`
}

type Location struct {
	gorm.Model
	BusinessID           uint         `json:"-" gorm:"not null;index"`
	StoreName            string       `json:"Store_name"`
	Rating               float32      `json:"rating"`
	StoreAddress         string       `json:"Store_address"`
	Email                string       `json:"email"`
	Website              string       `json:"website"`
	PageContent          string       `json:"page_content"`
	DefaultMessage       string       `json:"Default_message"`
	CustomerServiceEmail string       `json:"Customer_service_email"`
	ReviewLinks          []ReviewLink `json:"Review_links" gorm:"constraint:OnDelete:CASCADE"`
	Reviews              []Review     `json:"Reviews" gorm:"constraint:OnDelete:CASCADE"`
}

type ReviewLink struct {
	gorm.Model
	LocationID uint   `json:"-" gorm:"not null;index"`
	URL        string `json:"url"`
}

type Review struct {
	gorm.Model
	LocationID   uint   `json:"-" gorm:"not null;index"`
	ReviewTitle   string `json:"Review_title"`
	ReviewLink    string `json:"Review_link"`
	UnhappyAction string `json:"Unhappy_action"`
	Icon          string `json:"Icon"`
	Review        string `json:"review" gorm:"type:text"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Comment       string `json:"comment" gorm:"type:text"`
}
