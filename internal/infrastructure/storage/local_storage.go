package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/service"
)

// LocalDiskStorage keeps uploads in a directory served by the API under /uploads.
type LocalDiskStorage struct {
	root    string
	baseURL string
}

var _ service.ObjectStorage = (*LocalDiskStorage)(nil)

func NewLocalDiskStorage(root, publicBaseURL string) (*LocalDiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalDiskStorage{
		root:    root,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *LocalDiskStorage) Root() string {
	return s.root
}

func (s *LocalDiskStorage) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*entity.Asset, error) {
	objectName := ObjectName(folder, contentType, uuid.New().String(), time.Now())
	path, err := s.resolve(objectName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, file); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close file: %w", err)
	}

	return &entity.Asset{
		URL:      s.baseURL + "/uploads/" + objectName,
		PublicID: objectName,
	}, nil
}

func (s *LocalDiskStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	path, err := s.resolve(publicID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *LocalDiskStorage) Close() error {
	return nil
}

// resolve maps an object name to a path and refuses anything escaping the root.
func (s *LocalDiskStorage) resolve(objectName string) (string, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, filepath.FromSlash(objectName))
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}
	return path, nil
}
