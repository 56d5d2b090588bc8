package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		removed []string
	}{
		{"no query", "https://example.com/a", "https://example.com/a", nil},
		{"nothing to remove", "https://example.com/?ref=home&id=7", "https://example.com/?ref=home&id=7", nil},
		{"click ids", "https://example.com/?gclid=abc&ref=home&fbclid=xyz", "https://example.com/?ref=home", []string{"gclid", "fbclid"}},
		{"utm prefix", "https://example.com/?utm_source=old&UTM_Medium=x&page=2", "https://example.com/?page=2", []string{"utm_source", "UTM_Medium"}},
		{"everything removed", "https://example.com/p?msclkid=1", "https://example.com/p", []string{"msclkid"}},
		{"keeps fragment and encoding", "https://example.com/?q=a%20b&_hsenc=z#top", "https://example.com/?q=a%20b#top", []string{"_hsenc"}},
		{"prefix rule", "https://example.com/?hsa_cam=1&hsa_grp=2", "https://example.com/", []string{"hsa_cam", "hsa_grp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CleanURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.CleanedURL)

			var got []string
			for _, r := range result.RemovedParams {
				got = append(got, r.Parameter)
			}
			assert.Equal(t, tt.removed, got)
		})
	}
}

func TestCleanURL_RemovedDetails(t *testing.T) {
	result, err := CleanURL("https://example.com/?utm_campaign=spring%20sale&gclid=abc")
	require.NoError(t, err)
	require.Len(t, result.RemovedParams, 2)

	assert.Equal(t, RemovedParamInfo{
		Parameter:   "utm_campaign",
		Value:       "spring sale",
		Company:     "Google Analytics",
		Type:        "campaign",
		Description: "UTM campaign parameter",
		MatchedRule: "utm_",
	}, result.RemovedParams[0])
	assert.Equal(t, "Google Ads", result.RemovedParams[1].Company)
	assert.Equal(t, "gclid", result.RemovedParams[1].MatchedRule)
}

func TestTrackingParamWarnings(t *testing.T) {
	warnings := TrackingParamWarnings("shop.example.com?fbclid=1&utm_source=old")
	require.Len(t, warnings, 2)
	assert.Equal(t, "destination_url", warnings[0].Field)
	assert.Contains(t, warnings[0].Message, "fbclid")
	assert.Contains(t, warnings[1].Message, "utm_source")
	assert.Contains(t, warnings[1].Message, "appended after it")

	assert.Empty(t, TrackingParamWarnings("shop.example.com?ref=home"))
	assert.Empty(t, TrackingParamWarnings(""))
	assert.Empty(t, TrackingParamWarnings("http://bad host"))
}

func TestLintCampaignFields_FlagsTrackedDestination(t *testing.T) {
	warnings := LintCampaignFields(CampaignFields{DestinationURL: "example.com?gclid=abc", Source: "google", Medium: "cpc", CampaignID: "1"})
	require.Len(t, warnings, 1)
	assert.Equal(t, "destination_url", warnings[0].Field)
}
