package model

// LegalKnowledge is a static question/answer record used for search-based
// answers. Keywords are stored as a JSON array column.
type LegalKnowledge struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Category string   `gorm:"size:32;not null;index" json:"category"`
	Keywords []string `gorm:"type:text;serializer:json" json:"keywords"`
	Question string   `gorm:"type:text;not null" json:"question"`
	Answer   string   `gorm:"type:text;not null" json:"answer"`
	Priority int      `gorm:"not null;default:1" json:"priority"`
}
