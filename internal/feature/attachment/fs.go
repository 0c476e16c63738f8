package attachment

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"jobdesk/internal/core/apperr"
)

// DiskStore 把 blob 平铺在单个目录下，文件名即标识符。
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore { return &DiskStore{dir: dir} }

func (s *DiskStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	// 首次使用时建目录，重复调用无副作用
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	id := NewFileID(originalName)
	f, err := os.Create(filepath.Join(s.dir, id))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *DiskStore) Open(_ context.Context, id string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("File not found")
		}
		return nil, err
	}
	return f, nil
}
