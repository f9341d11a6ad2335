package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

// Publisher moves a staged file to where clients can fetch it.
type Publisher interface {
	Publish(ctx context.Context, info *FileInfo) error
	URL(savedFilename string) string
}

// DirPublisher copies files into a directory served as static content.
type DirPublisher struct {
	dir       string
	urlPrefix string
}

func NewDirPublisher(dir, urlPrefix string) *DirPublisher {
	return &DirPublisher{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (p *DirPublisher) Publish(ctx context.Context, info *FileInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("이미지 저장 경로 생성 실패 %s: %w", p.dir, err)
	}

	src, err := os.Open(info.LocalPath)
	if err != nil {
		return fmt.Errorf("임시 파일 열기 실패 %s: %w", info.LocalPath, err)
	}
	defer src.Close()

	target := filepath.Join(p.dir, info.SavedFilename)
	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("이미지 파일 생성 실패 %s: %w", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(target)
		return fmt.Errorf("이미지 파일 쓰기 실패 %s: %w", target, err)
	}
	return dst.Close()
}

func (p *DirPublisher) URL(savedFilename string) string {
	return p.urlPrefix + "/" + savedFilename
}

// MinioPublisher uploads files to a MinIO (S3 compatible) bucket.
type MinioPublisher struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioPublisher connects to MinIO and creates the bucket when it does not exist.
func NewMinioPublisher(ctx context.Context, cfg config.StorageConfig) (*MinioPublisher, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIO 클라이언트 생성 실패: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("MinIO 버킷 확인 실패 %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("MinIO 버킷 생성 실패 %s: %w", cfg.MinioBucket, err)
		}
	}

	return &MinioPublisher{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: minioPublicURL(cfg),
	}, nil
}

func minioPublicURL(cfg config.StorageConfig) string {
	if cfg.MinioPublicURL != "" {
		return strings.TrimRight(cfg.MinioPublicURL, "/")
	}
	scheme := "http"
	if cfg.MinioUseSSL {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: cfg.MinioEndpoint, Path: "/" + cfg.MinioBucket}
	return u.String()
}

func (p *MinioPublisher) Publish(ctx context.Context, info *FileInfo) error {
	_, err := p.client.FPutObject(ctx, p.bucket, info.SavedFilename, info.LocalPath, minio.PutObjectOptions{
		ContentType: info.ContentType,
	})
	if err != nil {
		return fmt.Errorf("MinIO 업로드 실패 %s: %w", info.SavedFilename, err)
	}
	return nil
}

func (p *MinioPublisher) URL(savedFilename string) string {
	return p.publicURL + "/" + savedFilename
}
