/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package uschess fetches rated-event crosstables from the US Chess
// ratings API (with an HTML fallback for club-hosted crosstables) and
// converts them into tournament data the reporting core can consume.
package uschess

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/swissreport/internal"
)

type Client struct {
	// completed rated events rarely change; standings during an event do
	httpClient30day *http.Client
	httpClient1day  *http.Client
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		httpClient30day: internal.NewCachedHttpClient(ctx, 30*24*time.Hour),
	}
	if ret.httpClient30day != http.DefaultClient {
		ret.httpClient1day = internal.NewCachedHttpClient(ctx, 24*time.Hour)
	} else {
		ret.httpClient1day = http.DefaultClient
	}

	return ret
}
