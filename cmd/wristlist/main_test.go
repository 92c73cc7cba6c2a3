package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"wristlist/internal/config"
	"wristlist/internal/errors"
	"wristlist/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI against a private config and database.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "checklist.db"),
	}, args...))
	err := cmd.Execute()
	return testutils.StripANSI(out.String()), err
}

func TestItemCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "No items\n", out)

	out, err = execute(t, dir, "add", "buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added: buy milk")

	_, err = execute(t, dir, "add", "oat milk")
	require.NoError(t, err)
	_, err = execute(t, dir, "add", "bread")
	require.NoError(t, err)

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"[ ] bread", "[ ] oat milk", "[ ] buy milk"},
		strings.Split(strings.TrimSpace(out), "\n"), "newest first")

	out, err = execute(t, dir, "list", "--match", "*MILK*")
	require.NoError(t, err)
	assert.Equal(t, []string{"[ ] oat milk", "[ ] buy milk"},
		strings.Split(strings.TrimSpace(out), "\n"))

	out, err = execute(t, dir, "list", "--age", "--match", "bread")
	require.NoError(t, err)
	assert.Regexp(t, `^\[ \] bread \((now|\d+ seconds? ago)\)\n$`, out)

	out, err = execute(t, dir, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "0 Items Deleted")
}

func TestItemCommandsShareTheWatchFaceStore(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"config.yaml": "storage:\n  path: " + filepath.Join(dir, "c.db") + "\n",
	})

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "add", "milk"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	a := &app{cfg: cfg}
	store := a.openStore()
	require.NoError(t, store.Init())
	defer store.Deinit()

	assert.Equal(t, 1, store.ItemCount(), "the TUI opens the list the CLI wrote to")
	item, err := store.ItemByID(0)
	require.NoError(t, err)
	assert.Equal(t, "milk", item.Name)
}

func TestItemCommandsRefuseMemoryBackend(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"config.yaml": "storage:\n  backend: memory\n",
	})

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "config.yaml"), "add", "milk"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
	assert.Contains(t, err.Error(), "storage.backend")
}

func TestAddRejectsFullChecklist(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"config.yaml": "checklist:\n  max_items: 1\n",
	})

	_, err := execute(t, dir, "add", "one")
	require.NoError(t, err)
	_, err = execute(t, dir, "add", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checklist is full")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written")

	cfg, err := config.LoadConfigFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New().Display, cfg.Display)

	_, err = execute(t, dir, "config", "init")
	assert.Error(t, err, "refuses to overwrite")
	_, err = execute(t, dir, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = execute(t, dir, "--shape", "round", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "shape: round")
	assert.Contains(t, out, "backend: sqlite")
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--shape", "hexagon", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.shape")
}
