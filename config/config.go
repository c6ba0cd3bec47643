package config

import (
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"loan-approval/approval"
)

const EnvPrefix = "LOAN_APPROVAL"

const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" validate:"gte=0"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"gte=0"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity" validate:"gte=1"`
	Refill   time.Duration `mapstructure:"refill" validate:"gt=0"`
}

type CacheConfig struct {
	Driver       string        `mapstructure:"driver" validate:"oneof=none memory redis"`
	RedisAddress string        `mapstructure:"redisAddress" validate:"required_if=Driver redis"`
	TTL          time.Duration `mapstructure:"ttl" validate:"gte=0"`
	MaxEntries   int           `mapstructure:"maxEntries" validate:"gte=0"`
}

// StageConfig describes one approval tier. A nil Max makes the band
// unbounded, which is only allowed for the last stage.
type StageConfig struct {
	Name string   `mapstructure:"name" json:"name" yaml:"name" validate:"required"`
	Min  float64  `mapstructure:"min" json:"min" yaml:"min" validate:"gte=0"`
	Max  *float64 `mapstructure:"max" json:"max,omitempty" yaml:"max,omitempty"`
}

type Config struct {
	Debug           bool            `mapstructure:"debug"`
	DecisionLogSize int             `mapstructure:"decisionLogSize" validate:"gte=0"`
	Server          ServerConfig    `mapstructure:"server"`
	RateLimit       RateLimitConfig `mapstructure:"rateLimit"`
	Cache           CacheConfig     `mapstructure:"cache"`
	Stages          []StageConfig   `mapstructure:"stages" validate:"required,min=1,dive"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("decisionLogSize", 1000)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("rateLimit.capacity", 5)
	v.SetDefault("rateLimit.refill", time.Minute)

	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.redisAddress", "localhost:6379")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.maxEntries", 10000)

	v.SetDefault("stages", DefaultStages())
}

// DefaultStages mirrors approval.DefaultStages in config form.
func DefaultStages() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "junior", "min": 0.0, "max": approval.JuniorLimit},
		{"name": "middle", "min": approval.JuniorLimit, "max": approval.MiddleLimit},
		{"name": "senior", "min": approval.MiddleLimit, "max": approval.SeniorLimit},
		{"name": "director", "min": approval.SeniorLimit},
	}
}

// Load reads defaults, then the optional YAML file at path, then
// LOAN_APPROVAL_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, "validation failed for config")
	}
	if _, err := c.Chain(); err != nil {
		return errors.Wrap(err, "invalid stages")
	}
	return nil
}

func (c *Config) ChainStages() []approval.Stage {
	stages := make([]approval.Stage, 0, len(c.Stages))
	for _, s := range c.Stages {
		high := math.Inf(1)
		if s.Max != nil {
			high = *s.Max
		}
		stages = append(stages, approval.Stage{
			Name: s.Name,
			Band: approval.NewBand(s.Min, high),
		})
	}
	return stages
}

func (c *Config) Chain() (*approval.Chain, error) {
	return approval.NewChain(c.ChainStages()...)
}
