package entity

import (
	"gorm.io/gorm"
)

// Attachment is a file linked to an Establishment. FileSize is the
// human-readable form ("2.35 MB"), not a raw byte count. StorageKey is
// the canonical object-storage key; deletion always uses it instead of
// re-deriving the key from FilePath.
type Attachment struct {
	gorm.Model
	FileName   string `gorm:"not null" json:"fileName"`
	FileType   string `json:"fileType"`
	FileSize   string `json:"fileSize"`
	FilePath   string `gorm:"not null" json:"filePath"`
	StorageKey string `json:"-"`

	EstablishmentID uint          `gorm:"not null;index" json:"establishmentId"`
	Establishment   Establishment `json:"-"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`
}
