package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileInfo describes an upload written to the staging directory.
type FileInfo struct {
	OriginalFilename string
	SavedFilename    string
	LocalPath        string
	ContentType      string
}

// Stager writes uploads to a local staging directory under collision-free names.
type Stager struct {
	dir string
}

func NewStager(dir string) *Stager {
	return &Stager{dir: dir}
}

func (s *Stager) SaveFile(fileHeader *multipart.FileHeader) (*FileInfo, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("업로드 파일이 없습니다")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("임시 저장 경로 생성 실패 %s: %w", s.dir, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("업로드 파일 열기 실패: %w", err)
	}
	defer src.Close()

	original := filepath.Base(fileHeader.Filename)
	saved := uuid.NewString() + strings.ToLower(filepath.Ext(original))
	localPath := filepath.Join(s.dir, saved)

	dst, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("임시 파일 생성 실패 %s: %w", localPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(localPath)
		return nil, fmt.Errorf("임시 파일 쓰기 실패 %s: %w", localPath, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(localPath)
		return nil, fmt.Errorf("임시 파일 닫기 실패 %s: %w", localPath, err)
	}

	return &FileInfo{
		OriginalFilename: original,
		SavedFilename:    saved,
		LocalPath:        localPath,
		ContentType:      fileHeader.Header.Get("Content-Type"),
	}, nil
}

// Discard removes the staged copy; a missing file is not an error.
func (s *Stager) Discard(info *FileInfo) error {
	if info == nil || info.LocalPath == "" {
		return nil
	}
	if err := os.Remove(info.LocalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("임시 파일 삭제 실패 %s: %w", info.LocalPath, err)
	}
	return nil
}
