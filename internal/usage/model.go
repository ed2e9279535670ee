package usage

import (
	"time"

	"careerdraft-backend/internal/document"
)

// LastGeneration records metadata about a user's most recent generation.
type LastGeneration struct {
	Kind          document.Kind `json:"type"`
	Timestamp     time.Time     `json:"timestamp"`
	ContentLength int           `json:"contentLength"`
}

// Usage is a user's generation counter snapshot.
type Usage struct {
	GenerationCount int             `json:"generationCount"`
	LastGeneration  *LastGeneration `json:"lastGeneration,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
