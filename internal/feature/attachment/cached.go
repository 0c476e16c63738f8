package attachment

import (
	"bytes"
	"context"
	"io"
	"time"

	"jobdesk/internal/core/cache"
)

// CachedStore 只在下载路径前加一层 redis 读穿缓存。
// 存储只增不删，缓存命中永远与磁盘/对象一致。
type CachedStore struct {
	inner Store
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedStore(inner Store, c *cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, cache: c, ttl: ttl}
}

func (s *CachedStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	return s.inner.Save(ctx, originalName, r)
}

func (s *CachedStore) Open(ctx context.Context, id string) (io.ReadCloser, error) {
	b, err := s.cache.GetOrLoad(ctx, "cv:"+id, s.ttl, func(ctx context.Context) ([]byte, error) {
		rc, err := s.inner.Open(ctx, id)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
