// Package attachment 简历 blob 存取。存储只增不删：
// 没有删除/覆盖路径，所以下载侧缓存永远不会读到陈旧内容。
package attachment

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"
)

// Store 以生成的文件名为键存取 blob。
type Store interface {
	// Save 持久化内容并返回生成的标识符
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Open 按标识符回读，不存在时返回 apperr.NotFound
	Open(ctx context.Context, id string) (io.ReadCloser, error)
}

// NewFileID 生成 {毫秒时间戳}-{[0,1e9) 随机整数}{原始扩展名}。
// 碰撞概率非零但按可忽略处理，不做碰撞重试。
func NewFileID(originalName string) string {
	return fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.Int63n(1_000_000_000),
		filepath.Ext(originalName))
}
