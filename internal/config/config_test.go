package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"goldtracker/internal/config"
	"goldtracker/testing/suite"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load(t *testing.T) {
	t.Run("should fall back to defaults without a file", func(t *testing.T) {
		cnf, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		require.Equal(t, ":8080", cnf.Server.Address)
		require.Equal(t, 30, cnf.Dashboard.Days)
		require.Equal(t, "UTC", cnf.Dashboard.Location().String())
		require.Equal(t, slog.LevelInfo, cnf.Logger.ParsedSlogLevel)
		require.False(t, cnf.Telegram.Enabled())
	})

	t.Run("should read values from the file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  address: \":9090\"\ntelegram:\n  token: secret\ndashboard:\n  days: 7\n  timezone: Asia/Shanghai\nlogger:\n  level: debug\n")

		cnf, err := config.Load(path)
		require.NoError(t, err)

		require.Equal(t, ":9090", cnf.Server.Address)
		require.True(t, cnf.Telegram.Enabled())
		require.Equal(t, 7, cnf.Dashboard.Days)
		require.Equal(t, "Asia/Shanghai", cnf.Dashboard.Location().String())
		require.Equal(t, slog.LevelDebug, cnf.Logger.ParsedSlogLevel)
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		path := writeConfig(t, "dashboard:\n  days: 7\n")
		t.Setenv("DASHBOARD_DAYS", "14")

		cnf, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, 14, cnf.Dashboard.Days)
	})

	t.Run("should reject a dashboard without a previous day", func(t *testing.T) {
		path := writeConfig(t, "dashboard:\n  days: 1\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "dashboard.days")
	})

	t.Run("should reject a history longer than the generator supports", func(t *testing.T) {
		path := writeConfig(t, "dashboard:\n  days: 3651\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "dashboard.days")
	})

	t.Run("should accept the longest supported history", func(t *testing.T) {
		path := writeConfig(t, "dashboard:\n  days: 3650\n")

		cnf, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, 3650, cnf.Dashboard.Days)
	})

	t.Run("should reject an unknown timezone", func(t *testing.T) {
		path := writeConfig(t, "dashboard:\n  timezone: Mars/Olympus\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "timezone")
	})

	t.Run("should load the example config shipped with the project", func(t *testing.T) {
		_, st := suite.New(t)

		cnf, err := config.Load(filepath.Join(st.BaseDir, "config.example.yml"))
		require.NoError(t, err)
		require.Equal(t, 30, cnf.Dashboard.Days)
	})
}
