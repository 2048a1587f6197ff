/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type stubRoundTripper struct {
	resp *http.Response
}

func (s stubRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return s.resp, nil
}

func TestTtlOverrideTransport(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header: http.Header{
			"Cache-Control": []string{"no-store"},
			"Pragma":        []string{"no-cache"},
			"Expires":       []string{"0"},
		},
	}
	rt := &ttlOverrideTransport{
		maxAge: 24 * time.Hour,
		next:   stubRoundTripper{resp: resp},
	}

	req, err := http.NewRequest("GET", "http://example.invalid/", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	got, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}

	if cc := got.Header.Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q; want public, max-age=86400", cc)
	}
	if got.Header.Get("Pragma") != "" || got.Header.Get("Expires") != "" {
		t.Errorf("origin no-cache headers survived: %v", got.Header)
	}
}

// TestNewCachedHttpClientNoBucket verifies the uncached fallback when no
// cache bucket is configured.
func TestNewCachedHttpClientNoBucket(t *testing.T) {
	t.Setenv(WebCacheBucketEnvVar, "")

	client := NewCachedHttpClient(context.Background(), time.Hour)
	if client != http.DefaultClient {
		t.Errorf("expected the default client when %v is unset",
			WebCacheBucketEnvVar)
	}
}
