package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Dishalex/PhotoShare/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Holds the process configuration. Reads are lock-free through atomic.Value.

const insecureDevSecret = "photoshare_dev_secret"

var (
	appConfig atomic.Value
	configMu  sync.Mutex
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Redis     RedisConfig     `mapstructure:"redis"`
	ImageHost ImageHostConfig `mapstructure:"image_host"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret                  string `mapstructure:"secret"`
	AccessExpirationMinutes int    `mapstructure:"access_expiration_minutes"`
	RefreshExpirationDays   int    `mapstructure:"refresh_expiration_days"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type ImageHostConfig struct {
	Provider   string           `mapstructure:"provider"` // cloudinary, minio
	Folder     string           `mapstructure:"folder"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	MinIO      MinIOConfig      `mapstructure:"minio"`
}

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	PublicURL string `mapstructure:"public_url"`
	SSL       bool   `mapstructure:"ssl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// Set stores cfg as the current configuration. Used by tests and by InitConfig.
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

// InitConfig loads .env, config.yaml and PHOTOSHARE_* variables, in increasing priority.
func InitConfig(customConfigDir string) error {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Msg("no .env file found, using process environment")
	}

	v, err := initViper(customConfigDir)
	if err != nil {
		return err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := applySecretPolicy(&cfg); err != nil {
		return err
	}

	Set(cfg)
	logging.Info().Str("dir", configDir).Msg("✅ config loaded")
	return nil
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		logging.Warn().Msg("⚠️  config file not found, using environment and defaults")
	}

	// server.port <- PHOTOSHARE_SERVER_PORT
	v.SetEnvPrefix("PHOTOSHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/photoshare.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "photoshare")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_expiration_minutes", 15)
	v.SetDefault("jwt.refresh_expiration_days", 7)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "photoshare")
	v.SetDefault("image_host.provider", "cloudinary")
	v.SetDefault("image_host.folder", "photo_share")
	v.SetDefault("image_host.cloudinary.cloud_name", "")
	v.SetDefault("image_host.cloudinary.api_key", "")
	v.SetDefault("image_host.cloudinary.api_secret", "")
	v.SetDefault("image_host.minio.endpoint", "127.0.0.1:9000")
	v.SetDefault("image_host.minio.access_key", "")
	v.SetDefault("image_host.minio.secret_key", "")
	v.SetDefault("image_host.minio.bucket", "photoshare")
	v.SetDefault("image_host.minio.public_url", "")
	v.SetDefault("image_host.minio.ssl", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// applySecretPolicy refuses to start a release build without a real JWT secret and fills
// in a development secret otherwise.
func applySecretPolicy(cfg *Config) error {
	if cfg.Server.Mode == "release" {
		if cfg.JWT.Secret == "" || cfg.JWT.Secret == insecureDevSecret {
			return errors.New("release mode requires jwt.secret (PHOTOSHARE_JWT_SECRET)")
		}
		return nil
	}
	if cfg.JWT.Secret == "" {
		logging.Warn().Msg("⚠️ jwt.secret not set, using an insecure development secret")
		cfg.JWT.Secret = insecureDevSecret
	}
	return nil
}
