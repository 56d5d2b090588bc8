package utils

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

//go:embed tracking_params.json
var trackingParamsJSON []byte

// TrackingParamDetail defines the structure for each tracking parameter's metadata.
type TrackingParamDetail struct {
	Key         string `json:"key"`
	MatchType   string `json:"match_type,omitempty"` // "exact" or "prefix"
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RemovedParamInfo holds information about a removed tracking parameter.
type RemovedParamInfo struct {
	Parameter   string `json:"parameter"`
	Value       string `json:"value"`
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MatchedRule string `json:"matched_rule"`
}

var (
	exactMatchParams  map[string]TrackingParamDetail
	prefixMatchParams []TrackingParamDetail
	loadOnce          sync.Once
	loadErr           error
)

func loadTrackingDefinitions() error {
	loadOnce.Do(func() {
		var params []TrackingParamDetail
		if err := json.Unmarshal(trackingParamsJSON, &params); err != nil {
			loadErr = fmt.Errorf("failed to decode tracking parameter definitions: %w", err)
			return
		}

		exactMatchParams = make(map[string]TrackingParamDetail)
		for _, p := range params {
			p.Key = strings.ToLower(p.Key)
			if p.MatchType == "prefix" {
				prefixMatchParams = append(prefixMatchParams, p)
			} else {
				p.MatchType = "exact"
				exactMatchParams[p.Key] = p
			}
		}
	})
	return loadErr
}

// matchTrackingParam checks exact rules first, then prefixes.
func matchTrackingParam(key string) (TrackingParamDetail, bool) {
	lowercaseKey := strings.ToLower(key)
	if detail, ok := exactMatchParams[lowercaseKey]; ok {
		return detail, true
	}
	for _, detail := range prefixMatchParams {
		if strings.HasPrefix(lowercaseKey, detail.Key) {
			return detail, true
		}
	}
	return TrackingParamDetail{}, false
}

// CleanURLResult holds the result of the cleaning operation.
type CleanURLResult struct {
	CleanedURL    string             `json:"cleaned_url"`
	RemovedParams []RemovedParamInfo `json:"removed_params"`
}

// CleanURL removes known tracking parameters. Kept pairs stay in their original
// order and encoding.
func CleanURL(rawURL string) (CleanURLResult, error) {
	if err := loadTrackingDefinitions(); err != nil {
		return CleanURLResult{}, err
	}
	result := CleanURLResult{RemovedParams: []RemovedParamInfo{}}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return result, err
	}
	if parsedURL.RawQuery == "" {
		result.CleanedURL = parsedURL.String()
		return result, nil
	}

	var kept []string
	for _, pair := range strings.Split(parsedURL.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}
		detail, found := matchTrackingParam(key)
		if !found {
			kept = append(kept, pair)
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = rawValue
		}
		result.RemovedParams = append(result.RemovedParams, RemovedParamInfo{
			Parameter:   key,
			Value:       value,
			Company:     detail.Company,
			Type:        detail.Type,
			Description: detail.Description,
			MatchedRule: detail.Key,
		})
	}

	parsedURL.RawQuery = strings.Join(kept, "&")
	parsedURL.ForceQuery = false
	result.CleanedURL = parsedURL.String()
	return result, nil
}

// TrackingParamWarnings flags tracking parameters already present on a destination.
func TrackingParamWarnings(destination string) []FieldWarning {
	if err := loadTrackingDefinitions(); err != nil || strings.TrimSpace(destination) == "" {
		return nil
	}
	normalized, err := NormalizeURL(destination)
	if err != nil {
		return nil
	}
	result, err := CleanURL(normalized)
	if err != nil {
		return nil
	}

	warnings := make([]FieldWarning, 0, len(result.RemovedParams))
	for _, removed := range result.RemovedParams {
		msg := fmt.Sprintf("destination already carries %s (%s %s)", removed.Parameter, removed.Company, strings.ReplaceAll(removed.Type, "_", " "))
		if removed.MatchedRule == "utm_" {
			msg = fmt.Sprintf("destination already carries %s; the campaign value is appended after it", removed.Parameter)
		}
		warnings = append(warnings, FieldWarning{Field: "destination_url", Message: msg})
	}
	return warnings
}
