package config

import (
	"errors"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"ADDR", "ETH_RPC_URL", "LOG_LEVEL", "LOG_FORMAT", "BATCH_WORKERS", "MAX_BATCH_SIZE"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":1337" || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RPCEndpoint != "" {
		t.Fatalf("rpc endpoint should be optional, got %q", cfg.RPCEndpoint)
	}
	if cfg.BatchWorkers != 8 || cfg.MaxBatchSize != 256 {
		t.Fatalf("unexpected batch defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("BATCH_WORKERS", "2")
	t.Setenv("MAX_BATCH_SIZE", "10")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.RPCEndpoint != "http://localhost:8545" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.BatchWorkers != 2 || cfg.MaxBatchSize != 10 {
		t.Fatalf("unexpected batch config: %+v", cfg)
	}
}

func TestFromEnvRejectsBadIntegers(t *testing.T) {
	t.Setenv("MAX_BATCH_SIZE", "")
	t.Setenv("BATCH_WORKERS", "many")
	if _, err := FromEnv(); !errors.Is(err, ErrInvalidBatchWorkers) {
		t.Fatalf("expected ErrInvalidBatchWorkers, got %v", err)
	}

	t.Setenv("BATCH_WORKERS", "4")
	t.Setenv("MAX_BATCH_SIZE", "0")
	if _, err := FromEnv(); !errors.Is(err, ErrInvalidMaxBatchSize) {
		t.Fatalf("expected ErrInvalidMaxBatchSize, got %v", err)
	}
}
