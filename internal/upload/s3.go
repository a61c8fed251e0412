package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/kindling-app/kindling/internal/profile"
	"github.com/kindling-app/kindling/internal/util/retry"
)

// S3Options configures the S3 uploader.
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the prefix of the served photo URL. Defaults to
	// <endpoint>/<bucket> when empty.
	PublicBaseURL string
}

// S3 uploads photos to an S3-compatible bucket.
type S3 struct {
	s3     *s3.Client
	bucket string
	base   string
}

// NewS3 creates an uploader for S3-compatible object storage.
func NewS3(opts S3Options) (*S3, error) {
	if opts.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
		config.WithRegion(opts.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	base := opts.PublicBaseURL
	if base == "" {
		base = strings.TrimSuffix(opts.Endpoint, "/") + "/" + opts.Bucket
	}

	return &S3{s3: client, bucket: opts.Bucket, base: strings.TrimSuffix(base, "/")}, nil
}

// Upload implements Uploader. The file is read once and pushed under a
// fresh UUID key; transient storage errors are retried with backoff.
func (c *S3) Upload(ctx context.Context, path string) (profile.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Photo{}, fmt.Errorf("failed to read photo %s: %w", path, err)
	}

	id := uuid.NewString()
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".jpg"
	}
	key := id + ext

	err = retry.Do(ctx, func() error {
		return c.putObject(ctx, key, data)
	})
	if err != nil {
		return profile.Photo{}, fmt.Errorf("failed to upload photo %s: %w", path, err)
	}

	return profile.Photo{
		ID:         id,
		URL:        c.base + "/" + key,
		SourcePath: path,
	}, nil
}

func (c *S3) putObject(ctx context.Context, key string, data []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		if isTransient(err) {
			return err
		}
		return retry.Permanent(err)
	}
	return nil
}

// isTransient reports whether an S3 error is worth retrying. Access and
// bucket errors never resolve on their own; throttling and internal errors do.
func isTransient(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "SlowDown", "InternalError", "ServiceUnavailable", "RequestTimeout":
			return true
		default:
			return false
		}
	}
	// Connection-level failures have no API error code.
	return true
}
