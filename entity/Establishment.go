package entity

import (
	"gorm.io/gorm"
)

// Categories an establishment can be filed under.
var Categories = []string{"Restaurant", "Retail", "Services", "Entertainment"}

// Suggested locations. Location itself is free text.
var Locations = []string{"Downtown", "Uptown", "Midtown", "Suburban"}

// Ratings, descending. Stored as strings on purpose: the filter
// buckets compare them lexically, which matches numeric order for
// these seven values.
var Ratings = []string{"5", "4.5", "4", "3.5", "3", "2.5", "2"}

const DefaultRating = "5"

type Establishment struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"not null;index" json:"category"`
	Location    string `gorm:"not null;index" json:"location"`
	Description string `json:"description"`
	Rating      string `gorm:"not null;default:5" json:"rating"`
	CoverImage  string `json:"coverImage"`

	UserID uint `gorm:"index" json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Attachments []Attachment `gorm:"foreignKey:EstablishmentID" json:"-"`
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidRating reports whether r is one of the seven rating values.
func ValidRating(r string) bool {
	for _, v := range Ratings {
		if v == r {
			return true
		}
	}
	return false
}
