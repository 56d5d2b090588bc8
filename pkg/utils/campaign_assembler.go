package utils

import (
	"context"
	"errors"
	"time"

	"github.com/vit0-9/campaign_url_api/pkg/utils/llm"
	"github.com/vit0-9/campaign_url_api/pkg/utils/shortener"
	"go.uber.org/zap"
)

// CompleterSource yields a completer for a request, honoring an optional per-request API key.
type CompleterSource interface {
	Completer(ctx context.Context, apiKey string) (llm.Completer, error)
}

// AssembleOptions selects the optional steps after the URL is built.
type AssembleOptions struct {
	Validate          bool
	ValidationTimeout time.Duration
	Shorten           bool
	QRSize            int // 0 skips the QR code
	Record            bool

	// CleanDestination strips known tracking parameters from the destination
	// before the campaign parameters are appended.
	CleanDestination bool
}

// GenerateRequest is one natural-language generation.
type GenerateRequest struct {
	Description string
	Model       string
	Temperature float64
	APIKey      string
}

// CampaignDraft is everything produced for one campaign.
type CampaignDraft struct {
	Description string             `json:"description,omitempty"`
	Fields      CampaignFields     `json:"fields"`
	URL         string             `json:"url"`
	Warnings    []FieldWarning     `json:"warnings"`
	Validation  *ValidationResult  `json:"validation,omitempty"`
	ShortURL    string             `json:"short_url,omitempty"`
	QRCode      []byte             `json:"-"`
	HistoryID   string             `json:"history_id,omitempty"`
	Removed     []RemovedParamInfo `json:"removed_params,omitempty"`
}

// CampaignAssembler runs Extractor → Builder → Validator and the optional
// shorten, QR and history steps. Optional collaborators may be nil.
type CampaignAssembler struct {
	completers    CompleterSource
	defaultModel  string
	validator     *URLValidator
	shortener     *shortener.Service
	history       *HistoryLog
	publicBaseURL string
	logger        *zap.Logger
}

type AssemblerDeps struct {
	Completers    CompleterSource
	DefaultModel  string
	Validator     *URLValidator
	Shortener     *shortener.Service
	History       *HistoryLog
	PublicBaseURL string
}

func NewCampaignAssembler(deps AssemblerDeps, logger *zap.Logger) *CampaignAssembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	validator := deps.Validator
	if validator == nil {
		validator = NewURLValidator(logger)
	}
	return &CampaignAssembler{
		completers:    deps.Completers,
		defaultModel:  deps.DefaultModel,
		validator:     validator,
		shortener:     deps.Shortener,
		history:       deps.History,
		publicBaseURL: deps.PublicBaseURL,
		logger:        logger.Named("assembler"),
	}
}

func (a *CampaignAssembler) Validator() *URLValidator { return a.validator }

func (a *CampaignAssembler) Shortener() *shortener.Service { return a.shortener }

func (a *CampaignAssembler) History() *HistoryLog { return a.history }

func (a *CampaignAssembler) PublicBaseURL() string { return a.publicBaseURL }

// Extract runs only the Field Extractor.
func (a *CampaignAssembler) Extract(ctx context.Context, req GenerateRequest) (CampaignFields, error) {
	if a.completers == nil {
		return CampaignFields{}, &UpstreamError{Category: UpstreamAuth, Err: llm.ErrMissingAPIKey}
	}
	completer, err := a.completers.Completer(ctx, req.APIKey)
	if err != nil {
		return CampaignFields{}, &UpstreamError{Category: classifyUpstreamError(err), Err: err}
	}
	return NewCampaignExtractor(completer, a.defaultModel, a.logger).Extract(ctx, req.Description, req.Model, req.Temperature)
}

// Generate extracts fields from a description and assembles the draft.
// When the extracted destination is unusable the returned *InvalidURLError
// carries the extracted fields.
func (a *CampaignAssembler) Generate(ctx context.Context, req GenerateRequest, opts AssembleOptions) (*CampaignDraft, error) {
	fields, err := a.Extract(ctx, req)
	if err != nil {
		return nil, err
	}
	draft, err := a.Assemble(ctx, req.Description, fields, opts)
	var invalid *InvalidURLError
	if errors.As(err, &invalid) {
		extracted := fields
		invalid.Fields = &extracted
		a.logger.Info("extracted destination unusable", zap.String("destination_url", fields.DestinationURL), zap.String("reason", invalid.Reason))
	}
	return draft, err
}

// Assemble builds, lints and optionally validates, shortens, renders and records the URL.
// Only a destination that cannot be normalized is an error; the optional steps
// degrade to warnings and log lines.
func (a *CampaignAssembler) Assemble(ctx context.Context, description string, fields CampaignFields, opts AssembleOptions) (*CampaignDraft, error) {
	var removed []RemovedParamInfo
	if opts.CleanDestination {
		normalized, err := NormalizeURL(fields.DestinationURL)
		if err != nil {
			return nil, err
		}
		cleaned, err := CleanURL(normalized)
		if err != nil {
			return nil, &InvalidURLError{URL: fields.DestinationURL, Reason: "cannot be cleaned", Err: err, Field: FieldDestinationURL}
		}
		fields.DestinationURL = cleaned.CleanedURL
		removed = cleaned.RemovedParams
	}

	built, err := BuildCampaignURL(fields)
	if err != nil {
		return nil, err
	}
	draft := &CampaignDraft{
		Description: description,
		Fields:      fields,
		URL:         built,
		Warnings:    LintCampaignFields(fields),
		Removed:     removed,
	}

	if opts.Validate {
		result := a.validator.Validate(ctx, built, opts.ValidationTimeout)
		draft.Validation = &result
		if result.IsWarning() {
			a.logger.Info("campaign URL did not validate", zap.String("status", string(result.Status)), zap.String("message", result.Message))
		}
	}

	if opts.Shorten && a.shortener != nil {
		link, err := a.shortener.Shorten(ctx, built)
		if err != nil {
			a.logger.Warn("shortening failed", zap.Error(err))
			draft.Warnings = append(draft.Warnings, FieldWarning{Message: "short link unavailable: " + err.Error()})
		} else {
			draft.ShortURL = link.ShortURL(a.publicBaseURL)
		}
	}

	if opts.QRSize > 0 {
		target := built
		if draft.ShortURL != "" {
			target = draft.ShortURL
		}
		png, err := GenerateQRCode(target, opts.QRSize)
		if err != nil {
			a.logger.Warn("QR rendering failed", zap.Error(err))
		} else {
			draft.QRCode = png
		}
	}

	if opts.Record && a.history != nil {
		record := HistoryRecord{
			Description: description,
			Fields:      fields,
			FinalURL:    built,
			ShortURL:    draft.ShortURL,
		}
		if draft.Validation != nil {
			record.ValidationStatus = draft.Validation.Status
		}
		saved, err := a.history.Append(record)
		if err != nil {
			a.logger.Warn("history append failed", zap.Error(err))
		} else {
			draft.HistoryID = saved.ID
		}
	}

	return draft, nil
}
