package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	// File 非空则同时写文件并按体积切割
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type DB struct {
	Driver             string // "mysql" | "postgres"
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Cache 只作用于简历下载的读穿缓存，关系型读路径不缓存。
type Cache struct {
	Enabled        bool `mapstructure:"enabled"`
	DownloadTTLSec int  `mapstructure:"download_ttl_sec"`
}

type UploadS3 struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type Upload struct {
	Backend string   `mapstructure:"backend"` // "fs" | "s3" | "memory"
	Dir     string   `mapstructure:"dir"`
	S3      UploadS3 `mapstructure:"s3"`
}

// Hardening 默认全关：unique_applications 打开后迁移时给
// jobs_seekers 建 (id_job, id_user) 唯一索引，重复投递报 409。
type Hardening struct {
	UniqueApplications bool `mapstructure:"unique_applications"`
}

type Config struct {
	App       App
	Log       Log
	DB        DB
	Redis     Redis     `mapstructure:"redis"`
	Cache     Cache     `mapstructure:"cache"`
	Upload    Upload    `mapstructure:"upload"`
	Hardening Hardening `mapstructure:"hardening"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "./cv"
	}
	return &c
}
