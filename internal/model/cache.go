// internal/model/cache.go
package model

import "time"

// WordCacheEntry is a durable cache record mapping a word to its analysis
// text. One entry per word: a repeated analysis overwrites the row and
// refreshes UpdatedAt. UpdatedAt is always set inside the write path so it
// can never lag behind the analysis text.
type WordCacheEntry struct {
	Word      string    `gorm:"primaryKey;size:255" json:"word"`
	Analysis  string    `gorm:"type:text;not null" json:"analysis"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`
}

func (WordCacheEntry) TableName() string {
	return "word_cache"
}
