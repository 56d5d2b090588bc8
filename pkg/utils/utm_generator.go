package utils

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// CampaignFields is the editable state of one campaign link.
type CampaignFields struct {
	DestinationURL string `json:"destination_url"`
	Source         string `json:"source"`
	Medium         string `json:"medium"`
	CampaignName   string `json:"campaign_name"`
	CampaignID     string `json:"campaign_id"`
	Term           string `json:"term"`
	Content        string `json:"content"`
}

// UTMParam is one key/value pair in emission order.
type UTMParam struct {
	Key   string
	Value string
}

// UTMParams returns the non-empty, trimmed parameters in their fixed order:
// source, medium, campaign, id, term, content.
func (f CampaignFields) UTMParams() []UTMParam {
	ordered := []UTMParam{
		{Key: "utm_source", Value: f.Source},
		{Key: "utm_medium", Value: f.Medium},
		{Key: "utm_campaign", Value: f.CampaignName},
		{Key: "utm_id", Value: f.CampaignID},
		{Key: "utm_term", Value: f.Term},
		{Key: "utm_content", Value: f.Content},
	}
	params := make([]UTMParam, 0, len(ordered))
	for _, p := range ordered {
		if v := strings.TrimSpace(p.Value); v != "" {
			params = append(params, UTMParam{Key: p.Key, Value: v})
		}
	}
	return params
}

// UTMGeneratorOptions defines formatting assistance options.
type UTMGeneratorOptions struct {
	ForceLowercase   bool   `json:"force_lowercase"`
	SpaceReplacement string `json:"space_replacement,omitempty"` // e.g., "_" or "-"
}

// FormatUTMValue applies formatting options to a UTM parameter value.
func FormatUTMValue(value string, options *UTMGeneratorOptions) string {
	if value == "" || options == nil {
		return value
	}
	processedValue := strings.TrimSpace(value)
	if options.ForceLowercase {
		processedValue = strings.ToLower(processedValue)
	}
	if options.SpaceReplacement != "" {
		processedValue = strings.ReplaceAll(processedValue, " ", options.SpaceReplacement)
	}
	return processedValue
}

// ApplyOptions formats every UTM field; the destination URL is left alone.
func (f CampaignFields) ApplyOptions(options *UTMGeneratorOptions) CampaignFields {
	f.Source = FormatUTMValue(f.Source, options)
	f.Medium = FormatUTMValue(f.Medium, options)
	f.CampaignName = FormatUTMValue(f.CampaignName, options)
	f.CampaignID = FormatUTMValue(f.CampaignID, options)
	f.Term = FormatUTMValue(f.Term, options)
	f.Content = FormatUTMValue(f.Content, options)
	return f
}

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// HasScheme reports whether raw starts with "<scheme>://".
func HasScheme(raw string) bool {
	return schemePrefix.MatchString(raw)
}

// NormalizeURL trims raw, prefixes https:// when no scheme is present, checks
// that the result has a host and returns it in canonical encoded form.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &InvalidURLError{URL: raw, Reason: "destination URL is required", Field: FieldDestinationURL}
	}
	if !HasScheme(trimmed) {
		trimmed = "https://" + trimmed
	}
	parsed, err := parseAbsolute(trimmed)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

func parseAbsolute(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Reason: "cannot be parsed", Err: err, Field: FieldDestinationURL}
	}
	if parsed.Scheme == "" || parsed.Hostname() == "" {
		return nil, &InvalidURLError{URL: raw, Reason: "missing host", Field: FieldDestinationURL}
	}
	if strings.ContainsAny(parsed.Host, " \t") {
		return nil, &InvalidURLError{URL: raw, Reason: "host contains whitespace", Field: FieldDestinationURL}
	}
	return parsed, nil
}

// EncodeUTMValue query-escapes v with spaces as %20.
func EncodeUTMValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// BuildCampaignURL appends the UTM parameters of fields to the normalized destination.
// The destination's own query string is kept byte-for-byte and the UTM pairs follow it,
// so a destination that already carries utm_source ends up with two utm_source entries,
// the campaign's value last.
func BuildCampaignURL(fields CampaignFields) (string, error) {
	normalized, err := NormalizeURL(fields.DestinationURL)
	if err != nil {
		return "", err
	}
	parsedURL, err := parseAbsolute(normalized)
	if err != nil {
		return "", err
	}

	params := fields.UTMParams()
	if len(params) == 0 {
		return parsedURL.String(), nil
	}

	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + EncodeUTMValue(p.Value)
	}
	utmQuery := strings.Join(pairs, "&")

	if parsedURL.RawQuery != "" {
		parsedURL.RawQuery = parsedURL.RawQuery + "&" + utmQuery
	} else {
		parsedURL.RawQuery = utmQuery
	}
	parsedURL.ForceQuery = false
	return parsedURL.String(), nil
}

// lintAllowed is the character set analytics tools handle without surprises.
var lintAllowed = regexp.MustCompile(`^[a-z0-9_.\-]*$`)

// LintUTMValue returns human-readable warnings for a single UTM value.
func LintUTMValue(value string) []string {
	var warnings []string
	if value == "" {
		return warnings
	}
	hasUpper := strings.IndexFunc(value, unicode.IsUpper) >= 0
	hasSpace := strings.ContainsRune(value, ' ')
	if hasUpper {
		warnings = append(warnings, "contains uppercase letters; UTM values are case-sensitive in most analytics tools")
	}
	if hasSpace {
		warnings = append(warnings, "contains spaces; prefer underscores or hyphens")
	}
	stripped := strings.ReplaceAll(strings.ToLower(value), " ", "")
	if !lintAllowed.MatchString(stripped) {
		warnings = append(warnings, "contains special characters; stick to letters, digits, '_', '-' and '.'")
	}
	return warnings
}

// FieldWarning is a lint finding tied to one field ("" for the whole campaign).
type FieldWarning struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// LintCampaignFields lints every UTM field and flags campaigns with neither a name nor an id.
func LintCampaignFields(fields CampaignFields) []FieldWarning {
	named := []struct {
		field string
		value string
	}{
		{"source", fields.Source},
		{"medium", fields.Medium},
		{"campaign_name", fields.CampaignName},
		{"campaign_id", fields.CampaignID},
		{"term", fields.Term},
		{"content", fields.Content},
	}

	warnings := append([]FieldWarning{}, TrackingParamWarnings(fields.DestinationURL)...)
	for _, n := range named {
		for _, msg := range LintUTMValue(strings.TrimSpace(n.value)) {
			warnings = append(warnings, FieldWarning{Field: n.field, Message: msg})
		}
	}
	if strings.TrimSpace(fields.CampaignName) == "" && strings.TrimSpace(fields.CampaignID) == "" {
		warnings = append(warnings, FieldWarning{Message: "either campaign_name or campaign_id is usually required for analytics tracking"})
	}
	return warnings
}
