package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
)

type Config struct {
	Addr         string
	// RPCEndpoint enables pool estimates when set.
	RPCEndpoint  string
	LogLevel     string
	LogFormat    string
	BatchWorkers int
	MaxBatchSize int
}

func FromEnv() (*Config, error) {
	batchWorkers, err := positiveInt("BATCH_WORKERS", 8, ErrInvalidBatchWorkers)
	if err != nil {
		return nil, err
	}
	maxBatch, err := positiveInt("MAX_BATCH_SIZE", 256, ErrInvalidMaxBatchSize)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:         getenv("ADDR", ":1337"),
		RPCEndpoint:  os.Getenv("ETH_RPC_URL"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "text"),
		BatchWorkers: batchWorkers,
		MaxBatchSize: maxBatch,
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int, sentinel error) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", sentinel, err)
	}
	if v <= 0 {
		return 0, sentinel
	}
	return v, nil
}
