package s3mock

import (
	"context"
	"log/slog"

	"github.com/ysn7199/yourmovies/core/internal/model"
)

// S3Storage is used when no bucket is configured. Uploaded posters are
// dropped and movies keep an empty poster URL.
type S3Storage struct {
	logger *slog.Logger
}

func New() *S3Storage {
	return &S3Storage{logger: slog.Default()}
}

func (s *S3Storage) Save(ctx context.Context, obj model.FileObject, contentType string) (string, error) {
	s.logger.Warn("poster storage is disabled, dropping upload", "filename", obj.GetFilename())
	return "", nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	return nil
}
