package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "lms-auth",
			"auth_token": "bearer_token",
			"version": "1.2.3"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/learnsync"},
			"client_db": {"dsn": "local.db"}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "15s"},
		"workers": {"sync_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost/learnsync", cfg.Storage.DB.DSN)
	assert.Equal(t, "local.db", cfg.Storage.ClientDB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeJSONConfig(t, `{"workers": {"sync_interval": 60000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeJSONConfig(t, `{"workers": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// ── view validation ──────────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "local.db"}},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no adapter address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"no sync interval", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestServerConfigValidate(t *testing.T) {
	valid := ServerConfig{
		App:         ServerApp{TokenSignKey: "secret"},
		DB:          DB{DSN: "postgres://localhost/learnsync"},
		HTTPAddress: "localhost:8080",
	}

	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr error
	}{
		{"valid", func(*ServerConfig) {}, nil},
		{"no dsn", func(c *ServerConfig) { c.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no address", func(c *ServerConfig) { c.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no sign key", func(c *ServerConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
