package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	// An empty temp dir means no config.yaml is found anywhere.
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "local", cfg.User)
	assert.Equal(t, "far", cfg.Section)
	assert.Equal(t, 30, cfg.DailyGoalPoints)
	assert.Equal(t, ":8337", cfg.ListenAddr)
	assert.True(t, cfg.CurriculumFilter)
	assert.True(t, cfg.PreviewMode)
	assert.Empty(t, cfg.ExamDate)
	assert.Empty(t, cfg.DBPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CPAPREP_SECTION", "reg")
	t.Setenv("CPAPREP_EXAM_DATE", "2026-06-15")
	t.Setenv("CPAPREP_DAILY_GOAL_POINTS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reg", cfg.Section)
	assert.Equal(t, "2026-06-15", cfg.ExamDate)
	assert.Equal(t, 50, cfg.DailyGoalPoints)
}
