package models

import "github.com/vit0-9/campaign_url_api/pkg/utils"

// UTMParameterSet represents a single set of UTM parameters for one generated URL.
// Empty values fall back to the common parameters.
type UTMParameterSet struct {
	Source       string `json:"source" binding:"required"`
	Medium       string `json:"medium" binding:"required"`
	CampaignName string `json:"campaign_name,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"`
	Term         string `json:"term,omitempty"`
	Content      string `json:"content,omitempty"`
}

// UTMGeneratorRequest builds one campaign URL per variable set.
type UTMGeneratorRequest struct {
	DestinationURL string `json:"destination_url" binding:"required"`
	CommonParams   struct {
		CampaignName string `json:"campaign_name,omitempty"`
		CampaignID   string `json:"campaign_id,omitempty"`
		Term         string `json:"term,omitempty"`
		Content      string `json:"content,omitempty"`
	} `json:"common_params"`
	VariableSets []UTMParameterSet          `json:"variable_sets" binding:"required,min=1,dive"`
	Options      *utils.UTMGeneratorOptions `json:"options,omitempty"`
}

// Fields merges the common parameters with one variable set.
func (r UTMGeneratorRequest) Fields(set UTMParameterSet) utils.CampaignFields {
	fields := utils.CampaignFields{
		DestinationURL: r.DestinationURL,
		Source:         set.Source,
		Medium:         set.Medium,
		CampaignName:   r.CommonParams.CampaignName,
		CampaignID:     r.CommonParams.CampaignID,
		Term:           r.CommonParams.Term,
		Content:        r.CommonParams.Content,
	}
	if set.CampaignName != "" {
		fields.CampaignName = set.CampaignName
	}
	if set.CampaignID != "" {
		fields.CampaignID = set.CampaignID
	}
	if set.Term != "" {
		fields.Term = set.Term
	}
	if set.Content != "" {
		fields.Content = set.Content
	}
	return fields.ApplyOptions(r.Options)
}

// GeneratedUTMLink holds a single generated URL and its parameters.
type GeneratedUTMLink struct {
	Fields   utils.CampaignFields `json:"fields"`
	FullURL  SafeURLString        `json:"full_url"`
	Warnings []utils.FieldWarning `json:"warnings"`
}

// UTMGeneratorResponse is the bulk generation result.
type UTMGeneratorResponse struct {
	DestinationURL string                     `json:"destination_url"`
	GeneratedURLs  []GeneratedUTMLink         `json:"generated_urls"`
	OptionsApplied *utils.UTMGeneratorOptions `json:"options_applied,omitempty"`
}
