package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"goldtracker/internal/config"
	"goldtracker/internal/interaction/api"
)

func runGenerate(t *testing.T, args ...string) []byte {
	t.Helper()

	var err error
	cnf, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"generate"}, args...))
	require.NoError(t, rootCmd.Execute())

	return out.Bytes()
}

func Test_Generate(t *testing.T) {
	t.Run("should print a reproducible dashboard for a seed and date", func(t *testing.T) {
		first := runGenerate(t, "--date", "November 7, 2025", "--seed", "42", "--days", "30")
		second := runGenerate(t, "--date", "2025-11-07", "--seed", "42", "--days", "30")
		require.Equal(t, string(first), string(second))

		var resp api.DashboardResponse
		require.NoError(t, json.Unmarshal(first, &resp))

		require.Len(t, resp.InternationalGold.Series, 30)
		require.Equal(t, "2025-11-07", resp.InternationalGold.Series[29].Date)
		require.Equal(t, "2025-10-09", resp.InternationalGold.Series[0].Date)
		require.Len(t, resp.Banks, 5)
		require.Len(t, resp.Shops, 5)
	})

	t.Run("should honour a shorter history", func(t *testing.T) {
		var resp api.DashboardResponse
		require.NoError(t, json.Unmarshal(runGenerate(t, "--date", "2025-11-07", "--seed", "1", "--days", "2"), &resp))

		require.Len(t, resp.DomesticGold.Series, 2)
		require.Equal(t, "2025-11-06", resp.DomesticGold.Series[0].Date)
	})
}
