package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/jobs"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the process. An empty DBHost selects the
// in-memory store; empty RedisAddr, KafkaHost or RabbitMQURL fall back to
// in-process adapters.
type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ScanTokenSecret string
	ScanTokenTTL    time.Duration
	DeliveryFee     int64
	AdminJWTSecret  string

	DispatchWeightDistance float64
	DispatchWeightRating   float64
	DispatchWeightWorkload float64
	DispatchWeightResponse float64

	DispatchJobSchedule  string
	DispatchJobBatch     int
	CourierStaleAfter    time.Duration
	CourierSweepSchedule string

	RedisAddr     string
	RedisPassword string

	KafkaHost              string
	KafkaOrderChangedTopic string

	RabbitMQURL string
}

func DefaultConfig() Config {
	weights := settings.Default()
	return Config{
		HTTPPort:               "8082",
		LogLevel:               "info",
		DBPort:                 "5432",
		DBSslMode:              "disable",
		ScanTokenTTL:           1440 * time.Minute,
		DeliveryFee:            15000,
		DispatchWeightDistance: weights.Distance(),
		DispatchWeightRating:   weights.Rating(),
		DispatchWeightWorkload: weights.Workload(),
		DispatchWeightResponse: weights.Response(),
		DispatchJobSchedule:    jobs.DefaultDispatchSchedule,
		DispatchJobBatch:       50,
		CourierStaleAfter:      jobs.DefaultStaleAfter,
		CourierSweepSchedule:   jobs.DefaultSweepSchedule,
		KafkaOrderChangedTopic: "order.status.changed",
	}
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, starting from DefaultConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	env.str(&cfg.HTTPPort, "HTTP_PORT")
	env.str(&cfg.LogLevel, "LOG_LEVEL")

	env.str(&cfg.DBHost, "DB_HOST")
	env.str(&cfg.DBPort, "DB_PORT")
	env.str(&cfg.DBUser, "DB_USER")
	env.str(&cfg.DBPassword, "DB_PASSWORD")
	env.str(&cfg.DBName, "DB_NAME")
	env.str(&cfg.DBSslMode, "DB_SSLMODE")

	env.str(&cfg.ScanTokenSecret, "SCAN_TOKEN_SECRET")
	env.minutes(&cfg.ScanTokenTTL, "SCAN_TOKEN_TTL_MINUTES")
	env.int64(&cfg.DeliveryFee, "DELIVERY_FEE")
	env.str(&cfg.AdminJWTSecret, "ADMIN_JWT_SECRET")

	env.float(&cfg.DispatchWeightDistance, "DISPATCH_WEIGHT_DISTANCE")
	env.float(&cfg.DispatchWeightRating, "DISPATCH_WEIGHT_RATING")
	env.float(&cfg.DispatchWeightWorkload, "DISPATCH_WEIGHT_WORKLOAD")
	env.float(&cfg.DispatchWeightResponse, "DISPATCH_WEIGHT_RESPONSE")

	env.str(&cfg.DispatchJobSchedule, "DISPATCH_JOB_SCHEDULE")
	env.int(&cfg.DispatchJobBatch, "DISPATCH_JOB_BATCH")
	env.duration(&cfg.CourierStaleAfter, "COURIER_STALE_AFTER")
	env.str(&cfg.CourierSweepSchedule, "COURIER_SWEEP_SCHEDULE")

	env.str(&cfg.RedisAddr, "REDIS_ADDR")
	env.str(&cfg.RedisPassword, "REDIS_PASSWORD")
	env.str(&cfg.KafkaHost, "KAFKA_HOST")
	env.str(&cfg.KafkaOrderChangedTopic, "KAFKA_ORDER_CHANGED_TOPIC")
	env.str(&cfg.RabbitMQURL, "RABBITMQ_URL")

	if err := errors.Join(append(env.errs, cfg.Validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.ScanTokenSecret == "" {
		problems = append(problems, errors.New("SCAN_TOKEN_SECRET is required"))
	}
	if c.ScanTokenTTL <= 0 {
		problems = append(problems, errors.New("SCAN_TOKEN_TTL_MINUTES must be positive"))
	}
	if c.DeliveryFee < 0 {
		problems = append(problems, errors.New("DELIVERY_FEE must not be negative"))
	}
	if c.DispatchJobBatch <= 0 {
		problems = append(problems, errors.New("DISPATCH_JOB_BATCH must be positive"))
	}
	if c.CourierStaleAfter <= 0 {
		problems = append(problems, errors.New("COURIER_STALE_AFTER must be positive"))
	}
	if _, err := c.DispatchWeights(); err != nil {
		problems = append(problems, fmt.Errorf("DISPATCH_WEIGHT_*: %w", err))
	}
	return errors.Join(problems...)
}

// DispatchWeights are the defaults persisted as version 1 on first use.
func (c Config) DispatchWeights() (settings.DispatchWeights, error) {
	return settings.NewDispatchWeights(
		c.DispatchWeightDistance,
		c.DispatchWeightRating,
		c.DispatchWeightWorkload,
		c.DispatchWeightResponse,
	)
}

func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *envReader) value(key string) (string, bool) {
	v, ok := r.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) str(target *string, key string) {
	if v, ok := r.value(key); ok {
		*target = v
	}
}

func (r *envReader) int(target *int, key string) {
	if v, ok := r.value(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*target = n
	}
}

func (r *envReader) int64(target *int64, key string) {
	if v, ok := r.value(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*target = n
	}
}

func (r *envReader) float(target *float64, key string) {
	if v, ok := r.value(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*target = f
	}
}

func (r *envReader) duration(target *time.Duration, key string) {
	if v, ok := r.value(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*target = d
	}
}

func (r *envReader) minutes(target *time.Duration, key string) {
	n := int(*target / time.Minute)
	r.int(&n, key)
	*target = time.Duration(n) * time.Minute
}
