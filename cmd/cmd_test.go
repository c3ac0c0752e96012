package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestBuiltinsCmd(t *testing.T) {
	out := execute(t, "builtins")

	for _, name := range []string{"cd", "help", "exit"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCmd(t *testing.T) {
	out := execute(t, "version")

	assert.Contains(t, out, "chrish")
	assert.Contains(t, out, Version)
}
