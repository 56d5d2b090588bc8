package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/vit0-9/campaign_url_api/pkg/utils/llm"
	"go.uber.org/zap"
)

const DefaultExtractionModel = "gpt-4o-mini"

// extractionSystemPrompt is sent unchanged with every extraction request.
const extractionSystemPrompt = `You are an expert marketing URL operations assistant.
Convert the user's natural language campaign description into structured UTM parameters.

Rules:
- destination_url: the page the campaign links to. Extract it if the text mentions one; if it has no scheme, assume https://.
- source (utm_source): the referrer, e.g. google, newsletter. Lowercase.
- medium (utm_medium): the marketing medium, e.g. cpc, email, social. Lowercase.
- campaign_name (utm_campaign): product, promo or slogan. Convert spaces to underscores. Keep lowercase unless specified.
- campaign_id (utm_id): the ads campaign id, if given.
- term (utm_term): paid keywords, if given.
- content (utm_content): what differentiates this ad or link, if given.

Use an empty string for anything the description does not mention.
Return JSON only, matching the schema. Do not include any text outside the JSON object.`

const extractionSchemaName = "campaign_parameters"

var (
	requiredExtractionKeys = []string{"destination_url", "source", "medium"}
	optionalExtractionKeys = []string{"campaign_name", "campaign_id", "term", "content"}
)

func extractionSchema() map[string]interface{} {
	nullableString := map[string]interface{}{"type": []string{"string", "null"}}
	properties := map[string]interface{}{}
	required := []string{}
	for _, key := range append(append([]string{}, requiredExtractionKeys...), optionalExtractionKeys...) {
		properties[key] = nullableString
		required = append(required, key)
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// CampaignExtractor turns a free-text description into CampaignFields with one completion call.
type CampaignExtractor struct {
	completer    llm.Completer
	defaultModel string
	logger       *zap.Logger
}

func NewCampaignExtractor(completer llm.Completer, defaultModel string, logger *zap.Logger) *CampaignExtractor {
	if defaultModel == "" {
		defaultModel = DefaultExtractionModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignExtractor{completer: completer, defaultModel: defaultModel, logger: logger.Named("extractor")}
}

// Extract issues exactly one completion request. Failures are *UpstreamError when the
// request itself failed and *ParseError when the reply is unusable.
func (e *CampaignExtractor) Extract(ctx context.Context, description, model string, temperature float64) (CampaignFields, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return CampaignFields{}, ErrEmptyDescription
	}
	if temperature < 0 || temperature > 2 {
		return CampaignFields{}, ErrTemperatureOutOfRange
	}
	if model == "" {
		model = e.defaultModel
	}

	raw, err := e.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: extractionSystemPrompt,
		UserPrompt:   description,
		Model:        model,
		Temperature:  temperature,
		SchemaName:   extractionSchemaName,
		Schema:       extractionSchema(),
	})
	if err != nil {
		upstream := &UpstreamError{Category: classifyUpstreamError(err), Err: err}
		e.logger.Warn("extraction call failed", zap.String("model", model), zap.String("category", string(upstream.Category)), zap.Error(err))
		return CampaignFields{}, upstream
	}

	fields, err := ParseCampaignFields(raw)
	if err != nil {
		e.logger.Warn("extraction reply rejected", zap.String("model", model), zap.Error(err))
		return CampaignFields{}, err
	}
	e.logger.Debug("extracted campaign fields", zap.String("model", model), zap.String("destination_url", fields.DestinationURL))
	return fields, nil
}

// ParseCampaignFields validates a model reply against the campaign schema.
// Required keys must be present; optional keys may be absent or null; extra keys are ignored.
func ParseCampaignFields(raw string) (CampaignFields, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &object); err != nil {
		return CampaignFields{}, &ParseError{Raw: raw, Reason: fmt.Sprintf("reply is not a JSON object: %v", err)}
	}
	if object == nil {
		return CampaignFields{}, &ParseError{Raw: raw, Reason: "reply is not a JSON object"}
	}

	values := make(map[string]string, len(requiredExtractionKeys)+len(optionalExtractionKeys))
	for _, key := range requiredExtractionKeys {
		value, ok := object[key]
		if !ok {
			return CampaignFields{}, &ParseError{Raw: raw, Reason: fmt.Sprintf("missing key %q", key)}
		}
		s, err := decodeNullableString(value)
		if err != nil {
			return CampaignFields{}, &ParseError{Raw: raw, Reason: fmt.Sprintf("key %q: %v", key, err)}
		}
		values[key] = s
	}
	for _, key := range optionalExtractionKeys {
		value, ok := object[key]
		if !ok {
			continue
		}
		s, err := decodeNullableString(value)
		if err != nil {
			return CampaignFields{}, &ParseError{Raw: raw, Reason: fmt.Sprintf("key %q: %v", key, err)}
		}
		values[key] = s
	}

	destination := strings.TrimSpace(values["destination_url"])
	if destination != "" && !HasScheme(destination) {
		destination = "https://" + destination
	}

	return CampaignFields{
		DestinationURL: destination,
		Source:         strings.TrimSpace(values["source"]),
		Medium:         strings.TrimSpace(values["medium"]),
		CampaignName:   strings.TrimSpace(values["campaign_name"]),
		CampaignID:     strings.TrimSpace(values["campaign_id"]),
		Term:           strings.TrimSpace(values["term"]),
		Content:        strings.TrimSpace(values["content"]),
	}, nil
}

func decodeNullableString(value json.RawMessage) (string, error) {
	if strings.TrimSpace(string(value)) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("expected string or null, got %s", string(value))
	}
	return s, nil
}

// stripCodeFence removes one surrounding ``` or ```json fence.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return trimmed
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	if newline := strings.IndexByte(inner, '\n'); newline >= 0 && !strings.HasPrefix(strings.TrimSpace(inner[:newline]), "{") {
		inner = inner[newline+1:]
	}
	return strings.TrimSpace(inner)
}

func classifyUpstreamError(err error) UpstreamCategory {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return UpstreamAuth
	}
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden:
			return UpstreamAuth
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return UpstreamRateLimit
		default:
			return UpstreamUnknown
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return UpstreamNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return UpstreamNetwork
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return UpstreamNetwork
	}
	return UpstreamUnknown
}
