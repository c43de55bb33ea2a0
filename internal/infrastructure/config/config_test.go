package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiors/backend/internal/domain/shared/valueobject"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when nothing is configured", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "forms-engine", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, int64(5<<20), cfg.HTTP.MaxBodySize)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "forms", cfg.Metrics.Namespace)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "forms-engine", cfg.Telemetry.ServiceName)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "£", cfg.Engine.CurrencySymbol)
		assert.Equal(t, "GBP", cfg.Engine.Currency)
		assert.Equal(t, "—", cfg.Engine.Placeholder)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("loads values from environment variables with FORMS prefix", func(t *testing.T) {
		t.Setenv("FORMS_APP_NAME", "forms-test")
		t.Setenv("FORMS_APP_PORT", "9000")
		t.Setenv("FORMS_LOG_LEVEL", "debug")
		t.Setenv("FORMS_LOG_FORMAT", "json")
		t.Setenv("FORMS_HTTP_READ_TIMEOUT", "3s")
		t.Setenv("FORMS_METRICS_ENABLED", "true")
		t.Setenv("FORMS_ENGINE_CURRENCY", "eur")
		t.Setenv("FORMS_ENGINE_CURRENCY_SYMBOL", "€")
		t.Setenv("FORMS_TELEMETRY_SAMPLING_RATIO", "0.5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "forms-test", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "EUR", cfg.Engine.Currency)
		assert.Equal(t, "€", cfg.Engine.CurrencySymbol)
		assert.Equal(t, 0.5, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "forms-test", cfg.Telemetry.ServiceName)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads toml and lets env override it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[app]
name = "forms-file"
env = "staging"

[http]
cors_allow_origins = ["https://dashboard.example.com"]

[engine]
placeholder = "n/a"
`), 0o600))
		t.Setenv("FORMS_APP_ENV", "qa")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "forms-file", cfg.App.Name)
		assert.Equal(t, "qa", cfg.App.Env)
		assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.HTTP.CORSAllowOrigins)
		assert.Equal(t, "n/a", cfg.Engine.Placeholder)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "bad port",
			env:     map[string]string{"FORMS_APP_PORT": "http"},
			wantErr: "app.port",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"FORMS_LOG_LEVEL": "verbose"},
			wantErr: "log.level",
		},
		{
			name:    "bad log format",
			env:     map[string]string{"FORMS_LOG_FORMAT": "xml"},
			wantErr: "log.format",
		},
		{
			name:    "metrics path without slash",
			env:     map[string]string{"FORMS_METRICS_PATH": "metrics"},
			wantErr: "metrics.path",
		},
		{
			name:    "sampling ratio out of range",
			env:     map[string]string{"FORMS_TELEMETRY_SAMPLING_RATIO": "1.5"},
			wantErr: "telemetry.sampling_ratio",
		},
		{
			name:    "log export without telemetry",
			env:     map[string]string{"FORMS_TELEMETRY_EXPORT_LOGS": "true"},
			wantErr: "telemetry.export_logs",
		},
		{
			name:    "unsupported currency",
			env:     map[string]string{"FORMS_ENGINE_CURRENCY": "CHF"},
			wantErr: "engine.currency",
		},
		{
			name:    "wildcard CORS in production",
			env:     map[string]string{"FORMS_APP_ENV": "production", "FORMS_HTTP_CORS_ALLOW_ORIGINS": "*"},
			wantErr: "cors_allow_origins",
		},
		{
			name: "insecure telemetry in production",
			env: map[string]string{
				"FORMS_APP_ENV":            "production",
				"FORMS_TELEMETRY_ENABLED":  "true",
				"FORMS_TELEMETRY_INSECURE": "true",
			},
			wantErr: "telemetry.insecure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ProductionAllowsSpecificOrigins(t *testing.T) {
	t.Setenv("FORMS_APP_ENV", "production")
	t.Setenv("FORMS_HTTP_CORS_ALLOW_ORIGINS", "https://dashboard.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.HTTP.CORSAllowOrigins)
}

func TestConfig_Conversions(t *testing.T) {
	t.Setenv("FORMS_APP_ENV", "staging")
	t.Setenv("FORMS_APP_VERSION", "2.1.0")
	t.Setenv("FORMS_ENGINE_CURRENCY", "usd")
	t.Setenv("FORMS_ENGINE_CURRENCY_SYMBOL", "$")
	t.Setenv("FORMS_TELEMETRY_ENABLED", "true")
	t.Setenv("FORMS_TELEMETRY_EXPORT_LOGS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.FormatterOptions()
	assert.Equal(t, valueobject.USD, opts.Currency)
	assert.Equal(t, "$", opts.CurrencySymbol)
	assert.Equal(t, "—", opts.Placeholder)

	tel := cfg.TelemetryOptions()
	assert.True(t, tel.Enabled)
	assert.True(t, tel.ExportLogs)
	assert.Equal(t, "forms-engine", tel.ServiceName)
	assert.Equal(t, "2.1.0", tel.ServiceVersion)
	assert.Equal(t, "staging", tel.Environment)
	assert.Equal(t, "localhost:4317", tel.CollectorEndpoint)
}
