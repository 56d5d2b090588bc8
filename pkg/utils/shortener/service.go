package shortener

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	charset         = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shortCodeLength = 7
	maxCodeAttempts = 5
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger.Named("shortener")}
}

// Shorten returns the existing link for originalURL, or stores a new one.
func (s *Service) Shorten(ctx context.Context, originalURL string) (*Link, error) {
	originalURL = strings.TrimSpace(originalURL)
	u, err := url.Parse(originalURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidLongURL
	}

	existing, err := s.repo.GetByOriginalURL(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateShortCode(shortCodeLength)
		if err != nil {
			return nil, err
		}
		taken, err := s.repo.GetByShortCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to look up short code: %w", err)
		}
		if taken != nil {
			continue
		}

		link := &Link{ShortCode: code, OriginalURL: originalURL, CreatedAt: time.Now().UTC()}
		if err := s.repo.Create(ctx, link); err != nil {
			return nil, fmt.Errorf("failed to store link: %w", err)
		}
		s.logger.Info("link shortened", zap.String("short_code", code))
		return link, nil
	}
	return nil, ErrCodeExhausted
}

// Resolve looks up code and counts the visit.
func (s *Service) Resolve(ctx context.Context, code string) (*Link, error) {
	link, err := s.repo.GetByShortCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up short code: %w", err)
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if err := s.repo.IncrementClicks(ctx, link.ID); err != nil {
		s.logger.Warn("failed to count click", zap.String("short_code", code), zap.Error(err))
	} else {
		link.Clicks++
	}
	return link, nil
}

func generateShortCode(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}
