package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DEBUG", "STORAGE_BACKEND", "DATA_FILE",
		"AUDIT_TOPIC", "KAFKA_BROKERS", "DB_HOST", "DB_PORT",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "boxhub.json", cfg.DataFile)
	assert.Equal(t, "audit_logs", cfg.AuditTopic)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Contains(t, cfg.PostgresDSN, "host=localhost")
	assert.Contains(t, cfg.PostgresDSN, "dbname=boxhub")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("STORAGE_BACKEND", BackendPostgres)
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.Debug)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Contains(t, cfg.PostgresDSN, "host=db.internal")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BOXHUB_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnv("BOXHUB_TEST_KEY", "fallback"))

	t.Setenv("BOXHUB_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("BOXHUB_TEST_KEY", "fallback"))
}
