package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpoet/config"
	"github.com/katalvlaran/graphpoet/poet"
)

const mugar = "This is a test of the Mugar Omni Theater sound system.\n"

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestPoem_Args(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", mugar)

	out, _, err := run(t, "", "--corpus", corpusPath, "poem", "Test", "the", "system.")
	require.NoError(t, err)
	assert.Equal(t, "Test of the system.\n", out)
}

func TestPoem_Stdin(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", "Hello world!")

	out, _, err := run(t, "Goodbye   world.\n", "--corpus", corpusPath, "poem")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye world.\n", out)
}

func TestPoem_ConfigFileAndHighlight(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	corpusPath := writeFile(t, "corpus.txt", mugar)
	cfgPath := writeFile(t, "graphpoet.yaml", "corpus: "+corpusPath+"\noutput:\n  highlight: true\n  color: \"99\"\n")

	out, _, err := run(t, "", "--config", cfgPath, "poem", "Test", "the")
	require.NoError(t, err)
	assert.NotEqual(t, "Test of the\n", out)
	assert.Equal(t, "Test of the\n", ansi.Strip(out))
	assert.Contains(t, out, "38;5;99")

	out, _, err = run(t, "", "--config", cfgPath, "poem", "--highlight=false", "Test", "the")
	require.NoError(t, err)
	assert.Equal(t, "Test of the\n", out)
}

func TestPoem_ConfigWithoutCorpusTakesFlag(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", mugar)
	cfgPath := writeFile(t, "graphpoet.yaml", "output:\n  highlight: false\n")

	out, _, err := run(t, "", "--config", cfgPath, "--corpus", corpusPath, "poem", "Test", "the")
	require.NoError(t, err)
	assert.Equal(t, "Test of the\n", out)

	_, _, err = run(t, "", "--config", cfgPath, "poem", "Test", "the")
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestPoem_FlagsRevalidated(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", mugar)
	cfgPath := writeFile(t, "graphpoet.yaml", "corpus: "+corpusPath+"\n")

	_, _, err := run(t, "", "--config", cfgPath, "--log-level", "chatty", "poem", "a")
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestBridge(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", mugar)

	out, _, err := run(t, "", "--corpus", corpusPath, "bridge", "TEST", "the")
	require.NoError(t, err)
	assert.Equal(t, "of (score 2)\n", out)

	out, _, err = run(t, "", "--corpus", corpusPath, "bridge", "omni", "theater")
	require.NoError(t, err)
	assert.Equal(t, "no bridge between \"omni\" and \"theater\"\n", out)

	_, _, err = run(t, "", "--corpus", corpusPath, "bridge", "one")
	require.Error(t, err)
}

func TestGraph(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", "Hello world. Hello everyone.")

	out, _, err := run(t, "", "--corpus", corpusPath, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "words: 4\n")
	assert.Contains(t, out, "vertices: 3\n")
	assert.Contains(t, out, "edges: 3\n")
	assert.Contains(t, out, "GraphPoet with graph: ")
	assert.Contains(t, out, "everyone.")
}

func TestDebugLogging(t *testing.T) {
	corpusPath := writeFile(t, "corpus.txt", mugar)

	_, logs, err := run(t, "", "--corpus", corpusPath, "--log-level", "debug", "--log-format", "json", "poem", "Test", "the")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"affinity graph built"`)
	assert.Contains(t, logs, `"msg":"bridge selected"`)
	assert.Contains(t, logs, `"cmd":"poem"`)
}

func TestErrors(t *testing.T) {
	t.Run("missing corpus flag", func(t *testing.T) {
		_, _, err := run(t, "", "poem", "a", "b")
		require.ErrorIs(t, err, config.ErrConfigInvalid)
	})
	t.Run("unreadable corpus", func(t *testing.T) {
		_, _, err := run(t, "", "--corpus", filepath.Join(t.TempDir(), "nonexistent.txt"), "poem", "a")
		require.ErrorIs(t, err, poet.ErrCorpusUnreadable)
	})
	t.Run("missing config file", func(t *testing.T) {
		_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "graph")
		require.ErrorIs(t, err, config.ErrConfigNotFound)
	})
	t.Run("bad log level", func(t *testing.T) {
		corpusPath := writeFile(t, "corpus.txt", mugar)
		_, _, err := run(t, "", "--corpus", corpusPath, "--log-level", "chatty", "graph")
		require.ErrorIs(t, err, config.ErrConfigInvalid)
	})
}
