package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.applyDefaults()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "auction.db", cfg.DatabasePath)
	require.Equal(t, "admin@gmail.com", cfg.AdminEmail)
	require.Equal(t, "123456", cfg.AdminPassword)
	require.Equal(t, "Admin", cfg.AdminName)
	require.Equal(t, 0.05, cfg.Commission)
	require.Equal(t, 30*time.Second, cfg.SweepInterval)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Port:          "9090",
		DatabasePath:  "/tmp/other.db",
		AdminEmail:    "root@example.com",
		AdminPassword: "hunter2",
		AdminName:     "Root",
		Commission:    0.1,
		SweepInterval: time.Minute,
		LogLevel:      "debug",
	}
	cfg.applyDefaults()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	require.Equal(t, "root@example.com", cfg.AdminEmail)
	require.Equal(t, "hunter2", cfg.AdminPassword)
	require.Equal(t, "Root", cfg.AdminName)
	require.Equal(t, 0.1, cfg.Commission)
	require.Equal(t, time.Minute, cfg.SweepInterval)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyDefaultsRejectsNonPositiveRates(t *testing.T) {
	t.Parallel()

	cfg := &Config{Commission: -0.05, SweepInterval: -time.Second}
	cfg.applyDefaults()

	require.Equal(t, 0.05, cfg.Commission)
	require.Equal(t, 30*time.Second, cfg.SweepInterval)
}
