package utils

import (
	"crypto/tls"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

// maxProbeRedirects bounds how many hops a probe follows before giving up.
const maxProbeRedirects = 10

var errTooManyRedirects = errors.New("too many redirects")

// Some landing pages answer 403 to Go's default agent.
var probeUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
}

var (
	sharedProbeClient *http.Client
	probeClientOnce   sync.Once

	userAgentMu   sync.Mutex
	userAgentRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// probeClient returns the shared client used for reachability checks.
// It has no overall Timeout; every probe bounds itself with a context deadline.
func probeClient() *http.Client {
	probeClientOnce.Do(func() {
		sharedProbeClient = newProbeClient(newProbeTransport())
	})
	return sharedProbeClient
}

func newProbeClient(transport http.RoundTripper) *http.Client {
	// Cookies set on one hop are sent on the next.
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		jar = nil
	}
	return &http.Client{
		Jar:           jar,
		Transport:     transport,
		CheckRedirect: limitRedirects,
	}
}

func newProbeTransport() *http.Transport {
	return &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		DialContext: (&net.Dialer{
			Timeout:   15 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}

func limitRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= maxProbeRedirects {
		return fmt.Errorf("%w: gave up at %s after %d hops", errTooManyRedirects, req.URL.Redacted(), len(via))
	}
	return nil
}

// GetRandomUserAgent picks one of the browser User-Agent strings sent with probes.
func GetRandomUserAgent() string {
	userAgentMu.Lock()
	defer userAgentMu.Unlock()
	return probeUserAgents[userAgentRand.Intn(len(probeUserAgents))]
}
