// Package config loads service configuration from YAML with environment
// variable overrides.
package config

import (
	"time"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/database"
)

// Default configuration values.
const (
	defaultServiceName      = "lawagent"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8090
	defaultBatchConcurrency = 8
	defaultBatchMaxSize     = 100
	defaultDBDriver         = "sqlite3"
	defaultDBDSN            = "lawagent.db"
	defaultDBMaxConns       = 10
	defaultDBMaxIdleConns   = 5
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultMinConfidence    = 0.2
	defaultForcedFloor      = 0.75
	defaultFeedbackRPS      = 5
	defaultFeedbackBurst    = 10
	defaultReadTimeoutSec   = 30
	defaultWriteTimeoutSec  = 60
	defaultIdleTimeoutSec   = 120
)

// Config holds all configuration for the service.
type Config struct {
	Service        ServiceConfig        `yaml:"service"`
	Database       database.Config      `yaml:"database"`
	Logging        LoggingConfig        `yaml:"logging"`
	Classification ClassificationConfig `yaml:"classification"`
	Feedback       FeedbackConfig       `yaml:"feedback"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name             string        `yaml:"name"`
	Version          string        `yaml:"version"`
	Port             int           `env:"LAWAGENT_PORT" yaml:"port"`
	Debug            bool          `env:"APP_DEBUG"     yaml:"debug"`
	BatchConcurrency int           `env:"LAWAGENT_BATCH_CONCURRENCY" yaml:"batch_concurrency"`
	BatchMaxSize     int           `yaml:"batch_max_size"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// ClassificationConfig holds the classification policy knobs.
type ClassificationConfig struct {
	MinConfidenceThreshold float64 `env:"LAWAGENT_MIN_CONFIDENCE" yaml:"min_confidence_threshold"`
	ForcedScoreFloor       float64 `yaml:"forced_score_floor"`
}

// FeedbackConfig holds the feedback adjustment policy.
type FeedbackConfig struct {
	PositiveStep       float64 `yaml:"positive_step"`
	StrongPositiveStep float64 `yaml:"strong_positive_step"`
	NegativeStep       float64 `yaml:"negative_step"`
	StrongNegativeStep float64 `yaml:"strong_negative_step"`
	RatingPositiveMin  int     `yaml:"rating_positive_min"`
	RatingNegativeMax  int     `yaml:"rating_negative_max"`
	RateLimitRPS       int     `yaml:"rate_limit_rps"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// Load loads configuration from the specified path. An empty path loads
// defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setLoggingDefaults(&cfg.Logging)
	setClassificationDefaults(&cfg.Classification)
	setFeedbackDefaults(&cfg.Feedback)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.BatchConcurrency == 0 {
		s.BatchConcurrency = defaultBatchConcurrency
	}
	if s.BatchMaxSize == 0 {
		s.BatchMaxSize = defaultBatchMaxSize
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = defaultIdleTimeoutSec * time.Second
	}
}

func setDatabaseDefaults(d *database.Config) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.DSN == "" {
		d.DSN = defaultDBDSN
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setClassificationDefaults(c *ClassificationConfig) {
	if c.MinConfidenceThreshold == 0 {
		c.MinConfidenceThreshold = defaultMinConfidence
	}
	if c.ForcedScoreFloor == 0 {
		c.ForcedScoreFloor = defaultForcedFloor
	}
}

func setFeedbackDefaults(f *FeedbackConfig) {
	// Step defaults live in the feedback package; only transport-level
	// knobs default here.
	if f.RateLimitRPS == 0 {
		f.RateLimitRPS = defaultFeedbackRPS
	}
	if f.RateLimitBurst == 0 {
		f.RateLimitBurst = defaultFeedbackBurst
	}
}
