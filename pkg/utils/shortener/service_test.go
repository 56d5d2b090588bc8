package shortener

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, name string) *SQLRepository {
	t.Helper()
	repo, err := NewSQLRepository(context.Background(), "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestService_ShortenAndResolve(t *testing.T) {
	ctx := context.Background()
	service := NewService(newTestRepository(t, "shorten_resolve"), nil)

	long := "https://example.com/landing?utm_source=newsletter&utm_medium=email"
	link, err := service.Shorten(ctx, long)
	require.NoError(t, err)
	assert.Len(t, link.ShortCode, shortCodeLength)
	assert.NotZero(t, link.ID)

	again, err := service.Shorten(ctx, long)
	require.NoError(t, err)
	assert.Equal(t, link.ShortCode, again.ShortCode)

	resolved, err := service.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, long, resolved.OriginalURL)
	assert.Equal(t, int64(1), resolved.Clicks)

	resolved, err = service.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resolved.Clicks)
}

func TestService_ResolveUnknown(t *testing.T) {
	service := NewService(newTestRepository(t, "resolve_unknown"), nil)
	_, err := service.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestService_ShortenRejectsNonHTTP(t *testing.T) {
	service := NewService(newTestRepository(t, "reject"), nil)
	for _, in := range []string{"", "example.com", "ftp://example.com/file", "https://"} {
		_, err := service.Shorten(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidLongURL, in)
	}
}

func TestLink_ShortURL(t *testing.T) {
	link := Link{ShortCode: "abc1234"}
	assert.Equal(t, "https://go.example/s/abc1234", link.ShortURL("https://go.example/"))
}

func TestGenerateShortCode(t *testing.T) {
	code, err := generateShortCode(12)
	require.NoError(t, err)
	assert.Len(t, code, 12)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(charset, r))
	}
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "libsql", DriverFor("libsql://db-org.turso.io?authToken=x"))
	assert.Equal(t, "libsql", DriverFor("wss://db-org.turso.io"))
	assert.Equal(t, "sqlite", DriverFor("file:campaign_links.sqlite"))
}
