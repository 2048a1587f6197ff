/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/swissreport/s3cache"
)

// NewCachedHttpClient returns an http.Client backed by an S3 httpcache
// when the cache bucket is configured, falling back to the uncached
// default client otherwise. The client enforces a client-side TTL by
// rewriting origin cache headers.
func NewCachedHttpClient(ctx context.Context, maxAge time.Duration) *http.Client {
	bucket := os.Getenv(WebCacheBucketEnvVar)
	if bucket == "" {
		return http.DefaultClient
	}

	cache := s3cache.New(ctx, bucket, true, true)
	if err := cache.Init(); err != nil {
		log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to uncached http", err)
		return http.DefaultClient
	}

	hc := httpcache.NewTransport(cache)
	hc.Transport = &ttlOverrideTransport{
		maxAge: maxAge,
		next:   http.DefaultTransport,
	}

	return &http.Client{Transport: hc}
}

// ttlOverrideTransport rewrites origin cache headers so the configured
// client-side TTL wins even when the origin forbids caching.
type ttlOverrideTransport struct {
	maxAge time.Duration
	next   http.RoundTripper
}

func (t *ttlOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	resp.Header.Del("Pragma")
	resp.Header.Del("Expires")
	resp.Header.Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(t.maxAge/time.Second)))
	return resp, nil
}
