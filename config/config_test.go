package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.JWT = JWTConfig{
		Secret:   strings.Repeat("k", MinSecretLength),
		Issuer:   "messenger",
		Audience: "messenger-clients",
	}
	cfg.applyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHashMemory, cfg.PasswordHash.Memory)
	assert.Equal(t, DefaultHashIterations, cfg.PasswordHash.Iterations)
	assert.Equal(t, DefaultHashParallelism, cfg.PasswordHash.Parallelism)
	assert.Equal(t, DefaultHashSaltLength, cfg.PasswordHash.SaltLength)
	assert.Equal(t, DefaultHashKeyLength, cfg.PasswordHash.KeyLength)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "jwt.secret is required"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = strings.Repeat("k", MinSecretLength-1) }, wantErr: "at least 64 bytes"},
		{name: "missing issuer", mutate: func(c *Config) { c.JWT.Issuer = " " }, wantErr: "jwt.issuer"},
		{name: "missing audience", mutate: func(c *Config) { c.JWT.Audience = "" }, wantErr: "jwt.audience"},
		{name: "wrong salt length", mutate: func(c *Config) { c.PasswordHash.SaltLength = 8 }, wantErr: "saltLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDevRoutesEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.DevRoutesEnabled())

	cfg.DevRoutes = &DevRoutesConfig{Enabled: true}
	assert.True(t, cfg.DevRoutesEnabled())
}
