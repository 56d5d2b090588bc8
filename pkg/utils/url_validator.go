package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const DefaultValidationTimeout = 5 * time.Second

type ValidationStatus string

const (
	StatusReachable   ValidationStatus = "reachable"
	StatusUnreachable ValidationStatus = "unreachable"
	StatusError       ValidationStatus = "error"
	StatusSkipped     ValidationStatus = "skipped"
)

// FailureCategory is set only when Status is StatusError.
type FailureCategory string

const (
	FailureTimeout    FailureCategory = "timeout"
	FailureDNS        FailureCategory = "dns"
	FailureConnection FailureCategory = "connection"
	FailureOther      FailureCategory = "other"
)

// ValidationResult is the outcome of one reachability probe.
type ValidationResult struct {
	Status         ValidationStatus `json:"status"`
	HTTPStatusCode *int             `json:"http_status_code,omitempty"` // nil when no response arrived
	Category       FailureCategory  `json:"category,omitempty"`
	Message        string           `json:"message"`
	Method         string           `json:"method,omitempty"`
	FinalURL       string           `json:"final_url,omitempty"`
	LatencyMS      int64            `json:"latency_ms"`
}

// IsWarning reports whether the result should be shown as a warning next to the URL.
func (r ValidationResult) IsWarning() bool {
	return r.Status != StatusReachable
}

// URLValidator probes URLs with HEAD, falling back to GET when HEAD is refused.
type URLValidator struct {
	client *http.Client
	logger *zap.Logger
}

func NewURLValidator(logger *zap.Logger) *URLValidator {
	return NewURLValidatorWithClient(probeClient(), logger)
}

func NewURLValidatorWithClient(client *http.Client, logger *zap.Logger) *URLValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &URLValidator{client: client, logger: logger.Named("validator")}
}

// Validate never returns an error: every outcome, including network failure, is a result.
// A timeout <= 0 means DefaultValidationTimeout.
func (v *URLValidator) Validate(ctx context.Context, rawURL string, timeout time.Duration) ValidationResult {
	if timeout <= 0 {
		timeout = DefaultValidationTimeout
	}
	if reason := syntaxProblem(rawURL); reason != "" {
		return ValidationResult{Status: StatusSkipped, Message: reason}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	result := v.probe(ctx, http.MethodHead, rawURL)
	if result.HTTPStatusCode != nil && headRejected(*result.HTTPStatusCode) {
		v.logger.Debug("HEAD rejected, retrying with GET", zap.String("url", rawURL), zap.Int("status", *result.HTTPStatusCode))
		result = v.probe(ctx, http.MethodGet, rawURL)
	}
	if result.Status == StatusError && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.Category = FailureTimeout
		result.Message = fmt.Sprintf("%s: no response within %s", FailureTimeout, timeout)
	}
	result.LatencyMS = time.Since(start).Milliseconds()

	v.logger.Debug("validated url",
		zap.String("url", rawURL),
		zap.String("status", string(result.Status)),
		zap.String("category", string(result.Category)),
		zap.Int64("latency_ms", result.LatencyMS))
	return result
}

func (v *URLValidator) probe(ctx context.Context, method, rawURL string) ValidationResult {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return ValidationResult{Status: StatusSkipped, Message: fmt.Sprintf("cannot build request: %v", err)}
	}
	req.Header.Set("User-Agent", GetRandomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := v.client.Do(req)
	if err != nil {
		category := classifyNetworkError(err)
		return ValidationResult{
			Status:   StatusError,
			Category: category,
			Method:   method,
			Message:  fmt.Sprintf("%s: %v", category, err),
		}
	}
	defer resp.Body.Close()
	// Drain a little so the connection can be reused; GET bodies are not needed.
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)

	code := resp.StatusCode
	result := ValidationResult{
		HTTPStatusCode: &code,
		Method:         method,
		FinalURL:       resp.Request.URL.String(),
	}
	if code >= 200 && code < 400 {
		result.Status = StatusReachable
		result.Message = fmt.Sprintf("%s answered %s", method, resp.Status)
	} else {
		result.Status = StatusUnreachable
		result.Message = fmt.Sprintf("%s answered %s", method, resp.Status)
	}
	return result
}

func headRejected(code int) bool {
	return code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented
}

func syntaxProblem(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "URL is empty"
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Sprintf("URL cannot be parsed: %v", err)
	}
	if parsed.Scheme == "" {
		return "URL has no scheme"
	}
	if parsed.Hostname() == "" {
		return "URL has no host"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Sprintf("scheme %q cannot be probed over HTTP", parsed.Scheme)
	}
	return ""
}

func classifyNetworkError(err error) FailureCategory {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return FailureTimeout
		}
		return FailureDNS
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return FailureConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection
	}
	return FailureOther
}
