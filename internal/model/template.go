// internal/model/template.go
package model

import "time"

// PromptTemplate is a named reusable prompt text. Names are unique.
type PromptTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PromptTemplate) TableName() string {
	return "prompt_templates"
}

// TemplateSummary is the list-view projection (id and name only).
type TemplateSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Template create request DTO
type PostTemplateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required"`
}

// Template full-replace request DTO
type PutTemplateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required"`
}

// Active-template switch request DTO
type PutActiveTemplateRequest struct {
	ID uint `json:"id" validate:"required"`
}
