package models

import "github.com/vit0-9/campaign_url_api/pkg/utils"

// CampaignFieldsInput is the editable form of a campaign. The form tags let the
// same fields arrive as query parameters in a shareable link.
type CampaignFieldsInput struct {
	DestinationURL string `json:"destination_url" form:"destination_url" binding:"required"`
	Source         string `json:"source" form:"source"`
	Medium         string `json:"medium" form:"medium"`
	CampaignName   string `json:"campaign_name" form:"campaign_name"`
	CampaignID     string `json:"campaign_id" form:"campaign_id"`
	Term           string `json:"term" form:"term"`
	Content        string `json:"content" form:"content"`
}

func (in CampaignFieldsInput) Fields() utils.CampaignFields {
	return utils.CampaignFields{
		DestinationURL: in.DestinationURL,
		Source:         in.Source,
		Medium:         in.Medium,
		CampaignName:   in.CampaignName,
		CampaignID:     in.CampaignID,
		Term:           in.Term,
		Content:        in.Content,
	}
}

// AssembleFlags are the optional steps shared by extract and build.
type AssembleFlags struct {
	Validate         bool `json:"validate" form:"validate"`
	Shorten          bool `json:"shorten" form:"shorten"`
	Record           bool `json:"record" form:"record"`
	CleanDestination bool `json:"clean_destination" form:"clean_destination"`
}

// ExtractCampaignRequest turns a description into a campaign URL.
type ExtractCampaignRequest struct {
	Description string   `json:"description" binding:"required"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty" binding:"omitempty,min=0,max=2"`
	APIKey      string   `json:"api_key,omitempty"` // overrides the configured provider key
	AssembleFlags
}

// BuildCampaignRequest builds a URL from fields the caller already has.
type BuildCampaignRequest struct {
	CampaignFieldsInput
	Options *utils.UTMGeneratorOptions `json:"options,omitempty" form:"-"`
	AssembleFlags
}

// CampaignResponse carries the built URL and everything computed alongside it.
type CampaignResponse struct {
	Description string                   `json:"description,omitempty"`
	Fields      utils.CampaignFields     `json:"fields"`
	URL         SafeURLString            `json:"url"`
	ShareURL    SafeURLString            `json:"share_url,omitempty"`
	Warnings    []utils.FieldWarning     `json:"warnings"`
	Validation  *utils.ValidationResult  `json:"validation,omitempty"`
	ShortURL    SafeURLString            `json:"short_url,omitempty"`
	HistoryID   string                   `json:"history_id,omitempty"`
	Removed     []utils.RemovedParamInfo `json:"removed_params,omitempty"`
}

func NewCampaignResponse(draft *utils.CampaignDraft) CampaignResponse {
	return CampaignResponse{
		Description: draft.Description,
		Fields:      draft.Fields,
		URL:         SafeURLString(draft.URL),
		Warnings:    draft.Warnings,
		Validation:  draft.Validation,
		ShortURL:    SafeURLString(draft.ShortURL),
		HistoryID:   draft.HistoryID,
		Removed:     draft.Removed,
	}
}
