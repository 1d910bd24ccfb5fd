// Package storage uploads site assets to the public object storage bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
)

// MaxUploadSize is the hard cap on a single asset. Larger files are rejected
// before any network call.
const MaxUploadSize = 5 * 1024 * 1024

// Folder namespaces object keys inside the bucket. The set is closed.
type Folder string

const (
	FolderProfile        Folder = "profile"
	FolderProjects       Folder = "projects"
	FolderCertifications Folder = "certifications"
	FolderBlog           Folder = "blog"
)

// ValidFolder reports whether f is one of the known upload folders.
func ValidFolder(f Folder) bool {
	switch f {
	case FolderProfile, FolderProjects, FolderCertifications, FolderBlog:
		return true
	}
	return false
}

// PutObjectAPI is the slice of the S3 client the uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes public-read assets into one bucket. A nil or unconfigured
// uploader fails every call with the not-configured error and performs no I/O.
type Uploader struct {
	api           PutObjectAPI
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
	now           func() time.Time
}

// NewUploader wires an uploader over an existing S3-compatible API.
func NewUploader(api PutObjectAPI, bucket, publicBaseURL string) *Uploader {
	return &Uploader{
		api:           api,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log.With().Str("component", "storage").Logger(),
		now:           time.Now,
	}
}

// NewFromConfig builds the S3 client from environment settings. Returns nil
// when the guard reports the backend unconfigured or bucket settings are
// absent; callers treat a nil uploader as degraded mode.
func NewFromConfig(ctx context.Context, c config.Config, guard *config.Guard) *Uploader {
	if !guard.Configured() {
		guard.WarnIfUnconfigured()
		return nil
	}

	bucket := c.GetString("STORAGE_BUCKET", "")
	endpoint := c.GetString("STORAGE_ENDPOINT", "")
	region := c.GetString("STORAGE_REGION", "us-east-1")
	accessKey := c.GetString("STORAGE_ACCESS_KEY", "")
	secretKey := c.GetString("STORAGE_SECRET_KEY", "")
	if bucket == "" || accessKey == "" || secretKey == "" {
		log.Warn().Msg("storage bucket credentials missing, uploads disabled")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("loading storage credentials, uploads disabled")
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return NewUploader(client, bucket, guard.BaseURL)
}

// Upload validates and stores one asset, returning its public URL. Keys are
// {folder}/{unix-nanos}{ext} with the extension lower-cased, which also makes
// the overwrite-allowed upload semantics harmless. There is no retry; a
// failed upload is retried by the caller re-invoking the whole operation.
func (u *Uploader) Upload(ctx context.Context, folder Folder, filename string, size int64, body io.Reader) (string, error) {
	if u == nil || u.api == nil {
		return "", errs.NewNotConfiguredError("object storage is not configured")
	}
	if !ValidFolder(folder) {
		return "", errs.NewBadRequestError(fmt.Sprintf("unknown upload folder %q", folder))
	}
	if size > MaxUploadSize {
		return "", errs.NewBadRequestError(fmt.Sprintf(
			"file is %d bytes, the upload limit is %d MB", size, MaxUploadSize/(1024*1024)))
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%d%s", folder, u.now().UnixNano(), ext)

	_, err := u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("asset upload failed")
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	publicURL := fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key)
	u.logger.Info().Str("key", key).Int64("size", size).Msg("asset uploaded")
	return publicURL, nil
}
