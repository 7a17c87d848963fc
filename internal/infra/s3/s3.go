package infra_s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

// Client is the part of *s3.Client the storage uses.
//
//go:generate mockery --name=Client --output=./mocks --outpkg=mocks --filename=client.go
type Client interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps movie posters in a bucket and hands out their public URLs.
type S3Storage struct {
	client Client

	prefix     string
	bucketName string
	publicURL  string
	now        func() time.Time
	logger     *slog.Logger
}

// New checks the bucket is reachable. publicURL is the base of returned
// poster URLs; empty means the bucket's virtual-hosted URL.
func New(ctx context.Context, client Client, bucketName, prefix, publicURL string) (*S3Storage, error) {
	storage := &S3Storage{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
		publicURL:  strings.TrimSuffix(publicURL, "/"),
		now:        time.Now,
		logger:     slog.Default(),
	}
	if storage.publicURL == "" {
		storage.publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucketName)
	}

	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			if _, ok := apiError.(*types.NotFound); ok {
				return nil, fmt.Errorf("bucket %s does not exist: %w", bucketName, err)
			}
		}
		return nil, fmt.Errorf("bucket %s is not accessible: %w", bucketName, err)
	}

	storage.logger.Info("poster bucket is available", "bucket", bucketName)
	return storage, nil
}

func (s *S3Storage) buildKey(paths ...string) string {
	var cleaned []string
	for _, p := range paths {
		clean := strings.ReplaceAll(p, "\\", "")
		clean = strings.ReplaceAll(clean, "/", "")
		if clean != "" {
			cleaned = append(cleaned, clean)
		}
	}
	return path.Join(cleaned...)
}

// Save uploads the poster and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, obj model.FileObject, contentType string) (string, error) {
	filename := fmt.Sprintf("%d-%s", s.now().UnixMilli(), obj.GetFilename())
	key := s.buildKey(s.prefix, obj.GetParent(), filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(obj.GetContent()),
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to save poster to S3: %w", err)
	}

	s.logger.Debug("poster saved", "key", key)
	return s.publicURL + "/" + key, nil
}

// Delete removes a poster previously returned by Save. URLs that do not
// belong to this storage are ignored.
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete poster from S3: %w", err)
	}
	return nil
}
