// internal/model/analysis.go
package model

import "time"

// Analysis request DTO. Force skips the cache lookup and always asks the
// language model, overwriting the cached entry.
type PostAnalysisRequest struct {
	Word  string `json:"word" validate:"required,min=1,max=100"`
	Force bool   `json:"force"`
}

// AnalysisResponse carries the raw markdown analysis plus a server-side
// HTML rendering of it.
type AnalysisResponse struct {
	Word         string    `json:"word"`
	Analysis     string    `json:"analysis"`
	AnalysisHTML string    `json:"analysis_html"`
	Cached       bool      `json:"cached"`
	UpdatedAt    time.Time `json:"updated_at"`
}
