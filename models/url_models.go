package models

import (
	"time"

	"github.com/vit0-9/campaign_url_api/pkg/utils"
)

// ValidateURLRequest asks for a reachability probe.
type ValidateURLRequest struct {
	URL       string `json:"url" binding:"required"`
	TimeoutMS int    `json:"timeout_ms,omitempty" binding:"omitempty,min=1,max=60000"`
}

// ValidateURLResponse wraps the probe result.
type ValidateURLResponse struct {
	URL SafeURLString `json:"url"`
	utils.ValidationResult
}

type ShortenURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type ShortenURLResponse struct {
	OriginalURL SafeURLString `json:"original_url"`
	ShortURL    SafeURLString `json:"short_url"`
	ShortCode   string        `json:"short_code"`
	Clicks      int64         `json:"clicks"`
	CreatedAt   time.Time     `json:"created_at"`
}

// HistoryResponse lists recent campaign URLs, newest first.
type HistoryResponse struct {
	Records []utils.HistoryRecord `json:"records"`
	Count   int                   `json:"count"`
}
