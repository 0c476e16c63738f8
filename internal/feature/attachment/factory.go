package attachment

import (
	"context"
	"fmt"
)

// Opts 由 main 从配置映射而来，包自带 Opts，不反向依赖 config。
type Opts struct {
	Backend string // "fs" | "s3" | "memory"，空值按 fs 处理
	Dir     string
	S3      S3Opts
}

// NewStore 按配置选择后端。
func NewStore(ctx context.Context, o Opts) (Store, error) {
	switch o.Backend {
	case "", "fs":
		if o.Dir == "" {
			return nil, fmt.Errorf("fs backend requires upload.dir")
		}
		return NewDiskStore(o.Dir), nil
	case "s3":
		if o.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 backend requires upload.s3.bucket")
		}
		return NewS3Store(ctx, o.S3)
	case "memory":
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown upload backend: %s", o.Backend)
	}
}
