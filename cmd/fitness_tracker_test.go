package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	logFile := filepath.Join(t.TempDir(), "tracker.log")
	envFile := filepath.Join(t.TempDir(), "missing.env")
	cmd.SetArgs(append([]string{"--log-file", logFile, "--env-file", envFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_DefaultSessions(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t,
		"Training type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.\n"+
			"Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.\n"+
			"Training type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.\n",
		stdout)
	assert.Empty(t, stderr)
}

func TestReportCmd_ConfigFileWithUnknownCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sessions:
  - code: XYZ
    data: [1, 2, 3]
  - code: RUN
    data: [15000, 1, 75]
`), 0644))
	metricsFile := filepath.Join(t.TempDir(), "report.prom")

	stdout, stderr, err := execute(t, "report", "--config", path, "--metrics-file", metricsFile)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.True(t, strings.HasPrefix(stdout, "Training type: Running;"))
	assert.Contains(t, stderr, `"XYZ"`)

	raw, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `fitness_tracker_report_skipped_total{reason="unknown_code"} 1`)
}

func TestSummarizeCmd(t *testing.T) {
	stdout, _, err := execute(t, "summarize", "--locale", "ru", "WLK", "9000", "1", "75", "180")
	require.NoError(t, err)
	assert.Equal(t,
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n",
		stdout)
}

func TestSummarizeCmd_BadArgument(t *testing.T) {
	_, _, err := execute(t, "summarize", "RUN", "fast", "1", "75")
	assert.Error(t, err)
}

func TestSummarizeCmd_ArityMismatchIsSkipped(t *testing.T) {
	stdout, stderr, err := execute(t, "summarize", "RUN", "15000", "1")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "argument count mismatch")
}

func TestCodesCmd(t *testing.T) {
	stdout, _, err := execute(t, "codes")
	require.NoError(t, err)
	assert.Equal(t,
		"SWM\tSwimming\taction duration_h weight_kg length_pool_m count_pool\n"+
			"RUN\tRunning\taction duration_h weight_kg\n"+
			"WLK\tSportsWalking\taction duration_h weight_kg height_cm\n",
		stdout)
}

func TestRootCmd_BadLocale(t *testing.T) {
	_, _, err := execute(t, "--locale", "xx")
	assert.Error(t, err)
}
