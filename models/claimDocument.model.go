package models

import (
	"time"

	"gorm.io/gorm"
)

// ClaimDocument is one uploaded attachment belonging to exactly one claim.
// Deleting the claim deletes its documents.
type ClaimDocument struct {
	gorm.Model
	ClaimID    uint      `json:"claim_id" gorm:"index;not null"`
	FileName   string    `json:"file_name" gorm:"not null"`
	FilePath   string    `json:"file_path" gorm:"not null"` // {userID}/claims/{claimID}/{filename} under the upload root
	FileSize   int64     `json:"file_size"`
	Extension  string    `json:"extension"`
	UploadedAt time.Time `json:"uploaded_at"`
}
