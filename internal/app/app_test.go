package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tdbload/internal/executor"
	"github.com/vk/tdbload/internal/hcl_adapter"
	"github.com/vk/tdbload/internal/model"
	"github.com/vk/tdbload/internal/testutil"
)

type stubExecutor struct {
	codes map[model.Phase]int
	calls []executor.Invocation
}

func (s *stubExecutor) Run(_ context.Context, inv executor.Invocation) (executor.Outcome, error) {
	s.calls = append(s.calls, inv)
	return executor.Outcome{Phase: inv.Phase, ExitCode: s.codes[inv.Phase]}, nil
}

// setupAppTest builds an App with a stub executor and a captured log buffer.
func setupAppTest(t *testing.T, cfg Config, exec *stubExecutor) (*App, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(logBuffer, validated, hcl_adapter.NewLoaderWithEnv([]string{"TOOLS=/opt/tools"}), exec)

	t.Cleanup(func() {
		if os.Getenv("TDBLOAD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, logBuffer
}

func TestRun_CreatesLocationAndRunsAllPhases(t *testing.T) {
	// --- Arrange ---
	loc := filepath.Join(t.TempDir(), "db")
	exec := &stubExecutor{}
	testApp, logs := setupAppTest(t, Config{Run: model.RunConfig{
		Location:  loc,
		Mode:      model.ModeAll,
		DataFiles: []string{"a.nt"},
	}}, exec)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.DirExists(t, loc)
	require.Len(t, exec.calls, 2)
	assert.Equal(t, "tdbloader2data", exec.calls[0].Tool)
	assert.Equal(t, "tdbloader2index", exec.calls[1].Tool)
	assert.Contains(t, logs.String(), "run_id=")
}

func TestRun_SettingsProvideToolsAndTuning(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "tdbload.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`
data_tool  = "${env.TOOLS}/data"
index_tool = "${env.TOOLS}/index"
jvm_args   = "-Xmx8G"
sort_args  = "-S 1G"
`), 0o644))
	exec := &stubExecutor{}
	testApp, _ := setupAppTest(t, Config{
		Run: model.RunConfig{
			Location:  filepath.Join(dir, "db"),
			Mode:      model.ModeAll,
			JVMArgs:   "-Xmx2G",
			DataFiles: []string{"a.nt"},
		},
		SettingsPaths: []string{settingsPath},
	}, exec)

	err := testApp.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, exec.calls, 2)
	assert.Equal(t, "/opt/tools/data", exec.calls[0].Tool)
	assert.Equal(t, "/opt/tools/index", exec.calls[1].Tool)
	assert.Equal(t, []string{"--jvm-args", "-Xmx2G", "--loc", filepath.Join(dir, "db"), "--", "a.nt"}, exec.calls[0].Args)
	assert.Equal(t, []string{"--jvm-args", "-Xmx2G", "--sort-args", "-S 1G", "--loc", filepath.Join(dir, "db")}, exec.calls[1].Args)
}

func TestRun_NonEmptyLocationRejectedWhenDataPhaseRuns(t *testing.T) {
	loc := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(loc, "nodes.dat"), []byte("x"), 0o644))
	exec := &stubExecutor{}
	testApp, _ := setupAppTest(t, Config{Run: model.RunConfig{
		Location:  loc,
		Mode:      model.ModeData,
		DataFiles: []string{"a.nt"},
	}}, exec)

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, model.ExitConfigError, model.ExitCode(err))
	assert.Empty(t, exec.calls)
}

func TestRun_IndexOnlyAcceptsExistingLocation(t *testing.T) {
	loc := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(loc, "nodes.dat"), []byte("x"), 0o644))
	exec := &stubExecutor{}
	testApp, _ := setupAppTest(t, Config{Run: model.RunConfig{Location: loc, Mode: model.ModeIndex}}, exec)

	require.NoError(t, testApp.Run(context.Background()))
	require.Len(t, exec.calls, 1)
	assert.Equal(t, model.PhaseIndex, exec.calls[0].Phase)
}

func TestRun_PhaseFailurePropagatesCode(t *testing.T) {
	exec := &stubExecutor{codes: map[model.Phase]int{model.PhaseData: 4}}
	testApp, _ := setupAppTest(t, Config{Run: model.RunConfig{
		Location:  filepath.Join(t.TempDir(), "db"),
		Mode:      model.ModeAll,
		DataFiles: []string{"a.nt"},
	}}, exec)

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, 4, model.ExitCode(err))
	assert.Len(t, exec.calls, 1)
}

func TestRun_BrokenSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "broken.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`data_tool = `), 0o644))
	exec := &stubExecutor{}
	testApp, _ := setupAppTest(t, Config{
		Run:           model.RunConfig{Location: filepath.Join(dir, "db"), Mode: model.ModeIndex},
		SettingsPaths: []string{settingsPath},
	}, exec)

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
	assert.Equal(t, model.ExitConfigError, model.ExitCode(err))
	assert.Empty(t, exec.calls)
	assert.NoDirExists(t, filepath.Join(dir, "db"), "nothing is created before settings load")
}

func TestRun_ElapsedCoversWholeRun(t *testing.T) {
	// --- Arrange ---
	loc := filepath.Join(t.TempDir(), "db")
	testApp, logs := setupAppTest(t, Config{Run: model.RunConfig{
		Location: loc,
		Mode:     model.ModeIndex,
	}}, &stubExecutor{})
	testApp.now = func() time.Time { return time.Now().Add(-time.Hour) }

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "elapsed_seconds=3600")
}
