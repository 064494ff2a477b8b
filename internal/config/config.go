package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Dispatch stores assignment engine settings.
type Dispatch struct {
	OperationTimeout  time.Duration
	ReconcileInterval time.Duration
}

// Kafka stores job-intake consumer settings. An empty broker list disables
// the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores token-bucket settings for the location ingest route.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug listener settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Dispatch  Dispatch
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      getenvInt("PORT", DefaultPort()),
		DB:        loadDB(),
		Dispatch:  loadDispatch(),
		Kafka:     loadKafka(),
		RateLimit: loadRateLimit(),
		Pprof:     loadPprof(),
	}

	fs := pflag.NewFlagSet("service-dispatch", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Dispatch.OperationTimeout <= 0 {
		return nil, fmt.Errorf("invalid operation timeout: %s", cfg.Dispatch.OperationTimeout)
	}
	return cfg, nil
}

func loadDB() DB {
	db := DefaultDB()
	db.Host = getenv("DB_HOST", db.Host)
	db.Port = getenv("DB_PORT", db.Port)
	db.User = getenv("DB_USER", db.User)
	db.Pass = getenv("DB_PASS", db.Pass)
	db.Name = getenv("DB_NAME", db.Name)
	return db
}

func loadDispatch() Dispatch {
	d := DefaultDispatch()
	d.OperationTimeout = getenvDuration("DISPATCH_OPERATION_TIMEOUT", d.OperationTimeout)
	d.ReconcileInterval = getenvDuration("DISPATCH_RECONCILE_INTERVAL", d.ReconcileInterval)
	return d
}

func loadKafka() Kafka {
	k := DefaultKafka()
	if v := getenv("KAFKA_BROKERS", ""); v != "" {
		k.Brokers = splitList(v)
	}
	k.Topic = getenv("KAFKA_TOPIC", k.Topic)
	k.GroupID = getenv("KAFKA_GROUP_ID", k.GroupID)
	return k
}

func loadRateLimit() RateLimit {
	rl := DefaultRateLimit()
	rl.Enabled = getenvBool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = getenvFloat("RATE_LIMIT_RATE", rl.Rate)
	rl.Burst = getenvInt("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = getenvDuration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = getenvInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)
	return rl
}

func loadPprof() Pprof {
	p := DefaultPprof()
	p.Enabled = getenvBool("PPROF_ENABLED", p.Enabled)
	p.Addr = getenv("PPROF_ADDR", p.Addr)
	p.User = getenv("PPROF_USER", p.User)
	p.Pass = getenv("PPROF_PASS", p.Pass)
	return p
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
