/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache implements httpcache.Cache on top of an Amazon S3
 * bucket, optionally gzip-compressing stored entries. It is derived from
 * github.com/sourcegraph/s3cache, ported to aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const keyPrefix = "s3cache"

// Cache stores and retrieves cache entries as objects in one S3 bucket.
// Entry keys are hashed into object keys under a fixed prefix.
type Cache struct {
	// Config is the AWS configuration loaded during Init.
	Config aws.Config

	// Client is the S3 client used for all bucket operations. Init
	// populates it from Config; callers may substitute their own client
	// before first use.
	Client *s3.Client

	bucket    string
	gzip      bool
	logErrors bool
	ctx       context.Context
}

// New returns a Cache backed by the named bucket. gzipEntries selects
// transparent compression of stored objects. Call Init before use.
func New(ctx context.Context, bucket string, gzipEntries, logErrors bool) *Cache {
	return &Cache{
		bucket:    bucket,
		gzip:      gzipEntries,
		logErrors: logErrors,
		ctx:       ctx,
	}
}

// Init loads the default AWS configuration (environment variables, then
// shared config/credentials files) and verifies the bucket is reachable.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	if c.Client == nil {
		c.Client = s3.NewFromConfig(c.Config)
	}

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucket, err)
	}

	return nil
}

// Get implements httpcache.Cache. A missing object is a cache miss, not
// an error.
func (c *Cache) Get(key string) ([]byte, bool) {
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.logf("s3cache.get: failed to get %v: %v", key, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if c.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed entry %v: %v",
				key, err)
			return nil, false
		}
		defer rdr.Close()
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read entry %v: %v", key, err)
		return nil, false
	}
	return data, true
}

// Set implements httpcache.Cache.
func (c *Cache) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.objectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip entry %v: %v", key, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to finish gzip entry %v: %v", key, err)
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v: %v", key, err)
	}
}

// Delete implements httpcache.Cache.
func (c *Cache) Delete(key string) {
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v: %v", key, err)
	}
}

func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("/%v/%v", keyPrefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}
	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.logErrors {
		log.Printf(format, args...)
	}
}
