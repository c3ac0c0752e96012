package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistration(t *testing.T) {
	assert.Equal(t, []string{"cd", "help", "exit"}, BuiltinNames)

	for _, name := range BuiltinNames {
		assert.NotNil(t, AllBuiltins[name], "unregistered builtin: %q", name)
	}
}

// pinWorkingDir restores the process working directory when the test
// finishes and returns where it was.
func pinWorkingDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})

	return wd
}

func TestCd(t *testing.T) {
	t.Run("missing operand", func(t *testing.T) {
		wd := pinWorkingDir(t)
		shell, _, stderr := newTestShell(t, nil, "")

		assert.Equal(t, Continue, Cd(shell, []string{"cd"}))

		assert.Equal(t, "chrish: expected argument to \"cd\"\n", stderr.String())
		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, wd, after)
	})

	t.Run("existing directory", func(t *testing.T) {
		pinWorkingDir(t)
		shell, _, stderr := newTestShell(t, nil, "")
		target := t.TempDir()

		assert.Equal(t, Continue, Cd(shell, []string{"cd", target}))

		assert.Empty(t, stderr.String())
		after, err := os.Getwd()
		require.NoError(t, err)

		// TempDir may live behind a symlink, compare resolved paths.
		wantResolved, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)
		gotResolved, err := filepath.EvalSymlinks(after)
		require.NoError(t, err)
		assert.Equal(t, wantResolved, gotResolved)
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		wd := pinWorkingDir(t)
		shell, _, stderr := newTestShell(t, nil, "")

		assert.Equal(t, Continue, Cd(shell, []string{"cd", "/no/such/path"}))

		assert.Contains(t, stderr.String(), "chrish: ")
		assert.Contains(t, stderr.String(), "/no/such/path")
		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, wd, after)
	})

	t.Run("extra operands are ignored", func(t *testing.T) {
		pinWorkingDir(t)
		shell, _, stderr := newTestShell(t, nil, "")
		target := t.TempDir()

		assert.Equal(t, Continue, Cd(shell, []string{"cd", target, "ignored"}))
		assert.Empty(t, stderr.String())
	})
}

func TestHelp(t *testing.T) {
	shell, stdout, stderr := newTestShell(t, nil, "")

	assert.Equal(t, Continue, Help(shell, []string{"help", "extra", "args"}))

	out := stdout.String()
	for _, name := range []string{"cd", "help", "exit"} {
		assert.Contains(t, out, name)
	}
	assert.Empty(t, stderr.String())
}

func TestHelpGolden(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	shell, stdout, _ := newTestShell(t, nil, "")
	Help(shell, []string{"help"})

	g.Assert(t, "help", stdout.Bytes())
}

func TestExit(t *testing.T) {
	shell, stdout, stderr := newTestShell(t, nil, "")

	assert.Equal(t, Terminate, Exit(shell, []string{"exit"}))
	assert.Equal(t, Terminate, Exit(shell, []string{"exit", "0", "now"}))

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
