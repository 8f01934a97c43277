// Package storage stores listing photos in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/env"
)

// Config holds the S3 connection settings for listing photos.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	PublicBaseURL   string
}

// ConfigFromEnv loads the photo storage settings from S3_* variables.
func ConfigFromEnv() *Config {
	return &Config{
		Region:          env.GetEnv("S3_REGION", "ap-southeast-1"),
		Bucket:          env.GetEnv("S3_BUCKET", ""),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
	}
}

// IsEnabled reports whether photo storage is configured.
func (c *Config) IsEnabled() bool {
	return c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Client wraps the S3 client with listing-photo specific functionality.
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new photo storage client.
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("photo storage is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// MinIO and other S3-compatible stores need path-style URLs
			o.UsePathStyle = true
		}
	})

	client := &Client{s3Client: s3Client, config: cfg}

	if err := client.testConnection(); err != nil {
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}

	log.Printf("[Storage] Initialized S3 client for bucket: %s", cfg.Bucket)
	return client, nil
}

func (c *Client) testConnection() error {
	_, err := c.s3Client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(c.config.Bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", c.config.Bucket, err)
	}
	return nil
}

// UploadPhoto stores one photo under the given object key and returns its
// public URL.
func (c *Client) UploadPhoto(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return c.PublicURL(key), nil
}

// DeletePhoto removes one photo from the bucket.
func (c *Client) DeletePhoto(ctx context.Context, key string) error {
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the public URL for an object key.
func (c *Client) PublicURL(key string) string {
	base := c.config.PublicBaseURL
	if base == "" {
		if c.config.EndpointURL != "" {
			base = fmt.Sprintf("%s/%s", strings.TrimRight(c.config.EndpointURL, "/"), c.config.Bucket)
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.config.Bucket, c.config.Region)
		}
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(key, "/"))
}
