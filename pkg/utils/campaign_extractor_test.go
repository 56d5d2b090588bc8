package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vit0-9/campaign_url_api/pkg/utils/llm"
)

type fakeCompleter struct {
	reply    string
	err      error
	calls    int
	requests []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

const fullReply = `{"destination_url":"https://shop.example.com/summer","source":"facebook","medium":"cpc","campaign_name":"summer_sale","campaign_id":"","term":"","content":"carousel_v2"}`

func TestExtract_Success(t *testing.T) {
	completer := &fakeCompleter{reply: fullReply}
	extractor := NewCampaignExtractor(completer, "gpt-4o-mini", nil)

	fields, err := extractor.Extract(context.Background(), "Facebook paid ads for summer sale, carousel v2, shop.example.com/summer", "", 0.2)
	require.NoError(t, err)
	assert.Equal(t, CampaignFields{
		DestinationURL: "https://shop.example.com/summer",
		Source:         "facebook",
		Medium:         "cpc",
		CampaignName:   "summer_sale",
		Content:        "carousel_v2",
	}, fields)

	require.Equal(t, 1, completer.calls)
	req := completer.requests[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 0.2, req.Temperature)
	assert.Equal(t, extractionSchemaName, req.SchemaName)
	assert.Equal(t, extractionSystemPrompt, req.SystemPrompt)
	assert.Len(t, req.Schema["required"], 7)
}

func TestExtract_ModelOverride(t *testing.T) {
	completer := &fakeCompleter{reply: fullReply}
	_, err := NewCampaignExtractor(completer, "", nil).Extract(context.Background(), "desc", "gpt-4.1", 1)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", completer.requests[0].Model)
}

func TestExtract_InputErrorsSkipNetwork(t *testing.T) {
	completer := &fakeCompleter{reply: fullReply}
	extractor := NewCampaignExtractor(completer, "", nil)

	_, err := extractor.Extract(context.Background(), "   ", "", 0.2)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = extractor.Extract(context.Background(), "desc", "", 2.5)
	assert.ErrorIs(t, err, ErrTemperatureOutOfRange)

	_, err = extractor.Extract(context.Background(), "desc", "", -0.1)
	assert.ErrorIs(t, err, ErrTemperatureOutOfRange)

	assert.Zero(t, completer.calls)
}

func TestExtract_NotJSON(t *testing.T) {
	completer := &fakeCompleter{reply: "not json"}
	_, err := NewCampaignExtractor(completer, "", nil).Extract(context.Background(), "desc", "", 0.2)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "not json", parseErr.Raw)
	assert.Equal(t, 1, completer.calls)
}

func TestExtract_UpstreamCategories(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want UpstreamCategory
	}{
		{"missing key", llm.ErrMissingAPIKey, UpstreamAuth},
		{"unauthorized", &llm.StatusError{Provider: "OpenAI", StatusCode: 401}, UpstreamAuth},
		{"forbidden", &llm.StatusError{Provider: "Gemini", StatusCode: 403}, UpstreamAuth},
		{"rate limit", fmt.Errorf("call: %w", &llm.StatusError{Provider: "OpenAI", StatusCode: 429}), UpstreamRateLimit},
		{"server error", &llm.StatusError{Provider: "OpenAI", StatusCode: 500}, UpstreamUnknown},
		{"deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), UpstreamNetwork},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.invalid"}, UpstreamNetwork},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, UpstreamNetwork},
		{"other", errors.New("boom"), UpstreamUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCampaignExtractor(&fakeCompleter{err: tt.err}, "", nil).Extract(context.Background(), "desc", "", 0.2)
			var upstream *UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.want, upstream.Category)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseCampaignFields(t *testing.T) {
	t.Run("nulls and absent optional keys are empty", func(t *testing.T) {
		fields, err := ParseCampaignFields(`{"destination_url":"example.com","source":"google","medium":null,"term":null,"extra":42}`)
		require.NoError(t, err)
		assert.Equal(t, CampaignFields{DestinationURL: "https://example.com", Source: "google"}, fields)
	})

	t.Run("code fence tolerated", func(t *testing.T) {
		fields, err := ParseCampaignFields("```json\n" + fullReply + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "facebook", fields.Source)
	})

	t.Run("scheme kept", func(t *testing.T) {
		fields, err := ParseCampaignFields(`{"destination_url":"http://example.com","source":"","medium":""}`)
		require.NoError(t, err)
		assert.Equal(t, "http://example.com", fields.DestinationURL)
	})

	t.Run("empty destination stays empty", func(t *testing.T) {
		fields, err := ParseCampaignFields(`{"destination_url":"","source":"x","medium":"y"}`)
		require.NoError(t, err)
		assert.Empty(t, fields.DestinationURL)
	})

	failures := map[string]string{
		"array":            `[1,2]`,
		"json null":        `null`,
		"missing required": `{"destination_url":"example.com","source":"google"}`,
		"wrong type":       `{"destination_url":"example.com","source":7,"medium":"cpc"}`,
		"optional wrong":   `{"destination_url":"example.com","source":"a","medium":"b","term":["x"]}`,
		"truncated":        `{"destination_url":"example.com"`,
	}
	for name, raw := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCampaignFields(raw)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, raw, parseErr.Raw)
			assert.NotEmpty(t, parseErr.Reason)
		})
	}
}
