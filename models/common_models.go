// models/common_models.go
package models

import "github.com/vit0-9/campaign_url_api/pkg/utils"

// APIErrorResponse represents a standard error response format.
type APIErrorResponse struct {
	StatusCode int    `json:"status_code"`       // HTTP status code
	ErrorCode  string `json:"error_code"`        // Application-specific error code
	Message    string `json:"message"`           // User-friendly error message
	Details    string `json:"details,omitempty"` // More detailed information, if available
	Field      string `json:"field,omitempty"`   // Offending request field, if any
	// Fields extracted before the failure, so the caller can fix the destination and rebuild
	Fields *utils.CampaignFields `json:"fields,omitempty"`
}

// Application error codes.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidURL     = "invalid_url"
	ErrorCodeParseError     = "parse_error"
	ErrorCodeUpstream       = "upstream" // suffixed with the upstream category, e.g. upstream_auth
	ErrorCodeNotFound       = "not_found"
	ErrorCodeInternal       = "internal"
)

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status    string `json:"status"`
	Provider  string `json:"provider,omitempty"`
	LinkStore string `json:"link_store,omitempty"`
}
