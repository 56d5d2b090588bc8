package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(server *httptest.Server) *URLValidator {
	return NewURLValidatorWithClient(server.Client(), nil)
}

func TestValidate_Reachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.NotEmpty(t, r.UserAgent())
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := newTestValidator(server).Validate(context.Background(), server.URL+"/landing", time.Second)
	assert.Equal(t, StatusReachable, result.Status)
	require.NotNil(t, result.HTTPStatusCode)
	assert.Equal(t, http.StatusOK, *result.HTTPStatusCode)
	assert.Equal(t, http.MethodHead, result.Method)
	assert.False(t, result.IsWarning())
}

func TestValidate_RedirectIsReachable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := newTestValidator(server).Validate(context.Background(), server.URL+"/old", time.Second)
	assert.Equal(t, StatusReachable, result.Status)
	assert.Equal(t, server.URL+"/new", result.FinalURL)
}

func TestValidate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result := newTestValidator(server).Validate(context.Background(), server.URL+"/broken", time.Second)
	assert.Equal(t, StatusUnreachable, result.Status)
	require.NotNil(t, result.HTTPStatusCode)
	assert.Equal(t, http.StatusNotFound, *result.HTTPStatusCode)
	assert.True(t, result.IsWarning())
}

func TestValidate_HeadRejectedFallsBackToGet(t *testing.T) {
	var gets atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		gets.Add(1)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "<html>protected</html>")
	}))
	defer server.Close()

	result := newTestValidator(server).Validate(context.Background(), server.URL+"/protected", time.Second)
	assert.Equal(t, StatusReachable, result.Status)
	assert.Equal(t, http.MethodGet, result.Method)
	assert.Equal(t, int32(1), gets.Load())
}

func TestValidate_SkippedWithoutNetworkCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	validator := newTestValidator(server)
	for _, in := range []string{"", "example.com", "https://", "mailto:someone@example.com", "ftp://files.example.com/a"} {
		result := validator.Validate(context.Background(), in, time.Second)
		assert.Equal(t, StatusSkipped, result.Status, in)
		assert.Nil(t, result.HTTPStatusCode, in)
		assert.NotEmpty(t, result.Message, in)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestValidate_TimeoutIsBounded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer server.Close()

	timeout := 100 * time.Millisecond
	start := time.Now()
	result := newTestValidator(server).Validate(context.Background(), server.URL, timeout)
	elapsed := time.Since(start)

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, FailureTimeout, result.Category)
	assert.Contains(t, result.Message, "timeout")
	assert.Nil(t, result.HTTPStatusCode)
	assert.Less(t, elapsed, timeout+time.Second)
}

func TestValidate_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	result := NewURLValidatorWithClient(&http.Client{}, nil).Validate(context.Background(), target, time.Second)
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, FailureConnection, result.Category)
	assert.Contains(t, result.Message, "connection")
}

func TestValidate_DefaultTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	result := newTestValidator(server).Validate(context.Background(), server.URL, 0)
	assert.Equal(t, StatusReachable, result.Status)
}

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureCategory
	}{
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), FailureTimeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}, FailureDNS},
		{"dns timeout", &net.DNSError{Err: "i/o timeout", Name: "slow.example", IsTimeout: true}, FailureTimeout},
		{"refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, FailureConnection},
		{"op error", &net.OpError{Op: "read", Net: "tcp", Err: errors.New("broken pipe")}, FailureConnection},
		{"other", errors.New("x509: certificate signed by unknown authority"), FailureOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyNetworkError(tt.err))
		})
	}
}

func TestValidate_RedirectLoop(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
	}))
	defer server.Close()

	validator := NewURLValidatorWithClient(newProbeClient(server.Client().Transport), nil)
	result := validator.Validate(context.Background(), server.URL+"/loop", time.Second)
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, FailureOther, result.Category)
	assert.Nil(t, result.HTTPStatusCode)
	assert.Contains(t, result.Message, errTooManyRedirects.Error())
	assert.EqualValues(t, maxProbeRedirects, hits.Load())
}
