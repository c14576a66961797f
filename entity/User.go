package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash, never the raw credential
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`

	// Relations — preload only when needed
	Establishments []Establishment `gorm:"foreignKey:UserID" json:"-"`
	Attachments    []Attachment    `gorm:"foreignKey:UserID" json:"-"`
}
