package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDescription      = errors.New("campaign description cannot be empty")
	ErrTemperatureOutOfRange = errors.New("temperature must be within [0, 2]")
)

// UpstreamCategory classifies why the completion call itself failed.
type UpstreamCategory string

const (
	UpstreamAuth      UpstreamCategory = "auth"
	UpstreamNetwork   UpstreamCategory = "network"
	UpstreamRateLimit UpstreamCategory = "rate_limit"
	UpstreamUnknown   UpstreamCategory = "unknown"
)

// ParseError means the model answered, but not with usable campaign JSON.
// Raw holds the reply exactly as received.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse campaign fields: %s", e.Reason)
}

// UpstreamError means the completion request did not produce a reply.
type UpstreamError struct {
	Category UpstreamCategory
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed (%s): %v", e.Category, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// FieldDestinationURL names the campaign field that carries the destination.
const FieldDestinationURL = "destination_url"

// InvalidURLError means a destination cannot be normalized into an absolute URL.
// Field is the request field the URL came from. Fields is set when the URL was
// extracted from a description, so callers can fix the destination and keep the rest.
type InvalidURLError struct {
	URL    string
	Reason string
	Err    error
	Field  string
	Fields *CampaignFields
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid destination URL %q: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid destination URL %q: %s", e.URL, e.Reason)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
