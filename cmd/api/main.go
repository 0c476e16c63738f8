package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobdesk/internal/core/cache"
	"jobdesk/internal/core/config"
	"jobdesk/internal/core/database"
	"jobdesk/internal/core/logger"
	"jobdesk/internal/core/server"
	"jobdesk/internal/domain"
	"jobdesk/internal/feature/account"
	"jobdesk/internal/feature/application"
	"jobdesk/internal/feature/attachment"
	"jobdesk/internal/feature/job"
	"jobdesk/internal/feature/views"
	"jobdesk/internal/repo"
	"jobdesk/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Job{}, &domain.Application{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}
	// 可选加固：重复投递在库层变成唯一冲突（默认关闭，保持原契约）
	if cfg.Hardening.UniqueApplications {
		mustUniqueApplications(db, log)
	}

	// 附件存储（fs / s3 / memory），按需套一层下载缓存
	blobs := mustOpenBlobs(cfg, log)

	users := repo.NewUserRepo(db)
	jobs := repo.NewJobRepo(db)
	apps := repo.NewApplicationRepo(db)

	r := router.NewAPIEngine(log, router.Deps{
		Account:     account.NewService(users),
		Jobs:        job.NewService(jobs),
		Tracker:     application.NewService(apps, blobs),
		Views:       views.NewFacade(apps),
		Attachments: blobs,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File == "" {
		return logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     true,
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func mustUniqueApplications(db *gorm.DB, l *zap.Logger) {
	const idx = "uidx_jobs_seekers_job_user"
	if db.Migrator().HasIndex(&domain.Application{}, idx) {
		return
	}
	if err := db.Exec("CREATE UNIQUE INDEX " + idx + " ON jobs_seekers (id_job, id_user)").Error; err != nil {
		l.Fatal("unique_applications index", zap.Error(err))
	}
	l.Info("hardening: unique applications index enabled")
}

func mustOpenBlobs(cfg *config.Config, l *zap.Logger) attachment.Store {
	blobs, err := attachment.NewStore(context.Background(), attachment.Opts{
		Backend: cfg.Upload.Backend,
		Dir:     cfg.Upload.Dir,
		S3: attachment.S3Opts{
			Bucket:    cfg.Upload.S3.Bucket,
			Region:    cfg.Upload.S3.Region,
			Endpoint:  cfg.Upload.S3.Endpoint,
			AccessKey: cfg.Upload.S3.AccessKey,
			SecretKey: cfg.Upload.S3.SecretKey,
		},
	})
	if err != nil {
		l.Fatal("attachment store", zap.Error(err))
	}
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.DownloadTTLSec) * time.Second
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		blobs = attachment.NewCachedStore(blobs, c, ttl)
		l.Info("download cache enabled", zap.String("redis", cfg.Redis.Addr))
	}
	return blobs
}
