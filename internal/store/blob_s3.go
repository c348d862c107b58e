// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

// s3API is the subset of *s3.Client used by [s3BlobStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3BlobStorage keeps food photos in an S3-compatible bucket (AWS, MinIO, R2).
type s3BlobStorage struct {
	client        s3API
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3BlobStorage builds an S3 client from cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3BlobStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3BlobStorage").Str("bucket", cfg.Bucket).Msg("s3 blob storage configured")

	return newS3BlobStorage(client, cfg, log), nil
}

func newS3BlobStorage(client s3API, cfg config.Blob, log *logger.Logger) *s3BlobStorage {
	return &s3BlobStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}
}

func (s *s3BlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := validateBlobKey(key); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3BlobStorage.Upload").Str("key", key).Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return key, nil
}

func (s *s3BlobStorage) Download(ctx context.Context, key string) ([]byte, error) {
	if err := validateBlobKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *s3BlobStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicBaseURL + "/" + key
}

func (s *s3BlobStorage) Delete(ctx context.Context, key string) error {
	if err := validateBlobKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}
