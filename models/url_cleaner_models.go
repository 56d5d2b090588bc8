package models

import "github.com/vit0-9/campaign_url_api/pkg/utils"

// CleanURLRequest carries the URL whose tracking parameters should be stripped.
type CleanURLRequest struct {
	URL string `json:"url" binding:"required" example:"https://example.com?gclid=abc&ref=home"`
}

// DetailedCleanURLResponse defines the JSON output with details of removed params
type DetailedCleanURLResponse struct {
	OriginalURL   SafeURLString            `json:"original_url" example:"https://example.com?gclid=abc&ref=home"`
	CleanedURL    SafeURLString            `json:"cleaned_url" example:"https://example.com?ref=home"`
	RemovedParams []utils.RemovedParamInfo `json:"removed_params"`
	Message       string                   `json:"message,omitempty" example:"Tracking parameters removed."`
}
