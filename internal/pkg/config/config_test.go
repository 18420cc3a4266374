//go:build unit

package config_test

import (
	"testing"
	"time"

	"group-deal-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestWorkerConfig_Validate(t *testing.T) {
	valid := config.WorkerConfig{
		Enabled:       true,
		TaskInterval:  15 * time.Second,
		SweepInterval: time.Minute,
		TaskBatchSize: 50,
	}

	tests := []struct {
		name    string
		mutate  func(*config.WorkerConfig)
		wantErr string
	}{
		{name: "defaults pass", mutate: func(*config.WorkerConfig) {}},
		{name: "zero task interval", mutate: func(c *config.WorkerConfig) { c.TaskInterval = 0 }, wantErr: "WORKER_TASK_INTERVAL"},
		{name: "negative sweep interval", mutate: func(c *config.WorkerConfig) { c.SweepInterval = -time.Second }, wantErr: "WORKER_SWEEP_INTERVAL"},
		{name: "zero batch", mutate: func(c *config.WorkerConfig) { c.TaskBatchSize = 0 }, wantErr: "WORKER_TASK_BATCH"},
		{name: "disabled worker is not checked", mutate: func(c *config.WorkerConfig) { c.Enabled = false; c.TaskInterval = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadConfig_RejectsZeroWorkerInterval(t *testing.T) {
	for k, v := range map[string]string{
		"PORT":        "8080",
		"DB_USER":     "app",
		"DB_PASSWORD": "secret",
		"DB_NAME":     "groupdeal",
		"JWT_SECRET":  "jwt-secret",
	} {
		t.Setenv(k, v)
	}
	t.Setenv("WORKER_ENABLED", "true")
	t.Setenv("WORKER_SWEEP_INTERVAL", "0s")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "WORKER_SWEEP_INTERVAL")
}
