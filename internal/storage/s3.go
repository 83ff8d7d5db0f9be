// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3KeyPrefix is the key prefix uploads are stored under in the bucket.
const s3KeyPrefix = "uploads/"

// S3 stores files in a single public S3-compatible bucket with path-style
// addressing (required by CEPH/Hetzner).
type S3 struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// NewS3 creates an S3 storage backend with static credentials.
func NewS3(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*S3, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("s3 storage requires endpoint and credentials")
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3{
		client:    client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Save uploads the file with a public-read ACL and returns its public URL.
func (c *S3) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	key := s3KeyPrefix + name
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return c.fileURL(key), nil
}

// Remove deletes the object a file URL refers to. S3 treats deleting a
// missing key as success, which matches the best-effort contract.
func (c *S3) Remove(ctx context.Context, fileURL string) error {
	key, ok := c.extractKey(fileURL)
	if !ok {
		return fmt.Errorf("refusing to remove %q: not stored in bucket %s", fileURL, c.bucket)
	}

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// fileURL returns the public URL for a stored key. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *S3) fileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// extractKey recovers the object key from a URL previously returned by
// Save, or ("", false) when the URL doesn't belong to this storage.
func (c *S3) extractKey(fileURL string) (string, bool) {
	for _, base := range []string{c.publicURL, c.endpoint + "/" + c.bucket} {
		if base == "" {
			continue
		}
		if key, ok := strings.CutPrefix(fileURL, base+"/"); ok && key != "" {
			return key, true
		}
	}
	return "", false
}
