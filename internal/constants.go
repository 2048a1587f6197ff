/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "swissreport/0.1.0 (+https://github.com/mikeb26/swissreport)"

	// WebCacheBucketEnvVar names the S3 bucket backing the HTTP cache;
	// when unset, fetches go out uncached.
	WebCacheBucketEnvVar = "SWISSREPORT_CACHE_BUCKET"
)
