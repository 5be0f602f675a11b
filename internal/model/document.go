package model

import "time"

type LegalDocument struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Filename      string    `gorm:"size:256;not null" json:"filename"`
	OriginalText  string    `gorm:"type:text" json:"originalText"`
	ExtractedText string    `gorm:"type:text" json:"extractedText"`
	Summary       string    `gorm:"type:text" json:"summary"`
	SessionID     string    `gorm:"size:128;not null;index" json:"sessionId"`
	UploadedAt    time.Time `gorm:"not null" json:"uploadedAt"`
}
