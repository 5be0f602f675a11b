package model

import "time"

// ChatMessage is one turn of a chat session. SessionID is chosen by the client.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:128;not null;index" json:"sessionId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsBot     bool      `gorm:"not null" json:"isBot"`
	Category  string    `gorm:"size:32" json:"category,omitempty"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
