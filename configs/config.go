package configs

import (
	"errors"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

// GetConfig loads the process-wide configuration once. A missing config
// file is not an error; defaults and environment variables still apply.
func GetConfig() *Config {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			panic(err)
		}
		config = cfg
	})
	return config
}

// Load reads configuration from file (explicit path, or config.yaml in the
// working directory and ./configs) layered over defaults and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WHITEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by existing deployments.
	_ = v.BindEnv("server.port", "WHITEBOARD_SERVER_PORT", "PORT")
	_ = v.BindEnv("cors.origin", "WHITEBOARD_CORS_ORIGIN", "CORS_ORIGIN")
	_ = v.BindEnv("database.url", "WHITEBOARD_DATABASE_URL", "DATABASE_URL")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, err
		}
	}

	return &Config{Viper: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("cors.origin", "http://localhost:5173")

	v.SetDefault("log.level", "info")

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "whiteboard")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "whiteboard_events")

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key_id", "")
	v.SetDefault("minio.secret_access_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "whiteboard-snapshots")
	v.SetDefault("minio.external_endpoint", "localhost:9000")

	v.SetDefault("rooms.require_membership", false)
	v.SetDefault("rooms.send_buffer", 256)
	v.SetDefault("rooms.max_message_size", 8<<20)
}
