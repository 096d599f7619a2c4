package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LevelDBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	AppLogFile string `mapstructure:"app_log_file"`
	Level      string `mapstructure:"level"`
}

type SeedConfig struct {
	Count int `mapstructure:"count"`
}

// Config is the full application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LevelDB LevelDBConfig `mapstructure:"leveldb"`
	Log     LogConfig     `mapstructure:"log"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

// DefaultPath is read when BLOG_CONFIG is unset
const DefaultPath = "config/config.yaml"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("leveldb.path", "data/blogposts")
	v.SetDefault("log.app_log_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.count", 0)
}

// Load reads the YAML file at path, then lets BLOG_* environment
// variables override it (BLOG_SERVER_PORT overrides server.port).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
