package storage

import (
	"context"
	"log/slog"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

// Store stages uploads locally (SaveFile, Discard), then publishes them.
type Store struct {
	*Stager
	publisher Publisher
}

func NewStore(stager *Stager, publisher Publisher) *Store {
	return &Store{Stager: stager, publisher: publisher}
}

// New picks MinIO when an endpoint is configured and the public directory otherwise.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	stager := NewStager(cfg.Storage.StagingDir)

	if !cfg.UseObjectStorage() {
		slog.Info("이미지 저장소: 로컬 디렉터리", "dir", cfg.Storage.PublicDir, "url_prefix", cfg.Storage.URLPrefix)
		return NewStore(stager, NewDirPublisher(cfg.Storage.PublicDir, cfg.Storage.URLPrefix)), nil
	}

	publisher, err := NewMinioPublisher(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	slog.Info("이미지 저장소: MinIO", "endpoint", cfg.Storage.MinioEndpoint, "bucket", cfg.Storage.MinioBucket)
	return NewStore(stager, publisher), nil
}

// Publish makes the staged file public and returns its URL.
func (s *Store) Publish(ctx context.Context, info *FileInfo) (string, error) {
	if err := s.publisher.Publish(ctx, info); err != nil {
		return "", err
	}
	return s.URL(info.SavedFilename), nil
}

func (s *Store) URL(savedFilename string) string {
	return s.publisher.URL(savedFilename)
}
