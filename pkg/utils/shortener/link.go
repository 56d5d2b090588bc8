// Package shortener stores campaign URLs behind short codes.
package shortener

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrLinkNotFound   = errors.New("link not found")
	ErrInvalidLongURL = errors.New("only absolute http(s) URLs can be shortened")
	ErrCodeExhausted  = errors.New("could not allocate a unique short code")
)

// Link is a shortened URL.
type Link struct {
	ID          int64     `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShortURL joins the public base URL and the link's code.
func (l Link) ShortURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + l.ShortCode
}

// Repository defines storage operations for links.
type Repository interface {
	Create(ctx context.Context, link *Link) error
	GetByShortCode(ctx context.Context, code string) (*Link, error)
	GetByOriginalURL(ctx context.Context, originalURL string) (*Link, error)
	IncrementClicks(ctx context.Context, id int64) error
	Close() error
}
