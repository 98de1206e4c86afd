package config_test

import (
	"facttodo/config"
	"facttodo/shared/failure"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	require.NoError(t, envconfig.Process("FACTTODO_CONFIG_TEST", cfg))

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *config.Config) {},
		},
		{
			name: "base url must be a url",
			mutate: func(cfg *config.Config) {
				cfg.External.CatFact.BaseURL = "not a url"
			},
			wantErr: true,
		},
		{
			name: "pool needs at least one connection",
			mutate: func(cfg *config.Config) {
				cfg.DB.Postgres.MaxOpenConnections = 0
			},
			wantErr: true,
		},
		{
			name: "init script is required",
			mutate: func(cfg *config.Config) {
				cfg.DB.Postgres.InitScript = ""
			},
			wantErr: true,
		},
		{
			name: "enabled rate limiter needs a window",
			mutate: func(cfg *config.Config) {
				cfg.App.RateLimiter.Enable = true
				cfg.App.RateLimiter.MaxRequests = 10
			},
			wantErr: true,
		},
		{
			name: "test server base url",
			mutate: func(cfg *config.Config) {
				cfg.External.CatFact.BaseURL = "http://127.0.0.1:41234"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults(t)
			tt.mutate(cfg)

			err := config.Validate(cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindConfig, failure.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
