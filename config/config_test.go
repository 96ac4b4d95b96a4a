package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresPostgres(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		password string
	}{
		{name: "missing url", password: "secret"},
		{name: "missing password", url: "postgres://polaris@db:5432/polaris"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_URL", tc.url)
			t.Setenv("POSTGRES_PASSWORD", tc.password)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://polaris@db:5432/polaris")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, RealtimeSourceApp, cfg.Realtime.Source)
	assert.Equal(t, "polaris:changes:", cfg.Realtime.ChannelPrefix)
	assert.False(t, cfg.MinIO.Enabled())
	assert.Empty(t, cfg.Discord.WebhookURL())
}

func TestLoadRejectsUnknownRealtimeSource(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://polaris@db:5432/polaris")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("REALTIME_SOURCE", "supabase")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PostgresConfig
		user    string
		sslmode string
		wantErr bool
	}{
		{
			name:    "password and ssl mode applied",
			cfg:     PostgresConfig{URL: "postgres://polaris@db:5432/polaris", Password: "p@ss/word", SSLMode: "require"},
			user:    "polaris",
			sslmode: "require",
		},
		{
			name:    "explicit sslmode wins",
			cfg:     PostgresConfig{URL: "postgresql://db/polaris?sslmode=verify-full", Password: "x", SSLMode: "disable"},
			user:    "postgres",
			sslmode: "verify-full",
		},
		{name: "bad scheme", cfg: PostgresConfig{URL: "mysql://db/polaris", Password: "x"}, wantErr: true},
		{name: "no host", cfg: PostgresConfig{URL: "postgres:///polaris", Password: "x"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dsn, err := tc.cfg.DSN()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			u, err := url.Parse(dsn)
			require.NoError(t, err)
			pw, _ := u.User.Password()
			assert.Equal(t, tc.cfg.Password, pw)
			assert.Equal(t, tc.user, u.User.Username())
			assert.Equal(t, tc.sslmode, u.Query().Get("sslmode"))
		})
	}
}

func TestDiscordWebhookURL(t *testing.T) {
	cfg := DiscordConfig{WebhookID: "123", WebhookToken: "abc"}
	assert.Equal(t, "https://discord.com/api/webhooks/123/abc", cfg.WebhookURL())
}
