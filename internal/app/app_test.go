package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattn/gocalc/internal/cli"
	"github.com/mattn/gocalc/internal/config"
)

func newTestApp(input string, mutate func(*config.Config)) (*App, *bytes.Buffer, *bytes.Buffer) {
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	return New(strings.NewReader(input), out, logs, cfg), out, logs
}

func TestRun_Args(t *testing.T) {
	t.Parallel()

	a, out, _ := newTestApp("", func(cfg *config.Config) {
		cfg.Args = []string{"1", "+", "3", "*", "(3", "-", "1)", "/", "2"}
	})
	require.NoError(t, a.Run())
	require.Equal(t, "4\n", out.String())
}

func TestRun_ArgsError(t *testing.T) {
	t.Parallel()

	a, out, _ := newTestApp("", func(cfg *config.Config) {
		cfg.Args = []string{"5/0"}
	})
	err := a.Run()

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, "error: division by zero: 5 / 0", exitErr.Message)
	require.Empty(t, out.String())
}

func TestRun_Batch(t *testing.T) {
	t.Parallel()

	input := "1 + 2\n\n  7 / 2  \n2 * (3 + 4)\n"
	a, out, _ := newTestApp(input, nil)
	require.NoError(t, a.Run())
	require.Equal(t, "3\n3\n14\n", out.String())
}

func TestRun_BatchWithFailures(t *testing.T) {
	t.Parallel()

	input := "1 + 2\n1 +M 232\n(1\n4 * 4\n"
	a, out, _ := newTestApp(input, nil)
	err := a.Run()

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, "2 of 4 expressions failed", exitErr.Message)

	want := strings.Join([]string{
		"3",
		"error: invalid character 'M' at offset 3",
		`error: unbalanced parenthesis: "(" at token 0 is never closed`,
		"16",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestRun_ShowTree(t *testing.T) {
	t.Parallel()

	a, out, _ := newTestApp("", func(cfg *config.Config) {
		cfg.ShowTree = true
		cfg.Args = []string{"1 - 2 - 3"}
	})
	require.NoError(t, a.Run())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "tree: ((1-2)-3)", lines[0])
	require.Equal(t, "-4", lines[len(lines)-1])
	require.Contains(t, out.String(), "Left:")
}

func TestRun_Examples(t *testing.T) {
	t.Parallel()

	a, out, _ := newTestApp("", func(cfg *config.Config) {
		cfg.Examples = true
	})
	require.NoError(t, a.Run())
	require.Contains(t, out.String(), "1 + 3 * (3 - 1) / 2 = 4\n")
	require.Contains(t, out.String(), "5/0: error: division by zero: 5 / 0\n")
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	a, _, logs := newTestApp("6 * 7\n", func(cfg *config.Config) {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "json"
	})
	require.NoError(t, a.Run())
	require.Contains(t, logs.String(), `"msg":"Expression evaluated."`)
	require.Contains(t, logs.String(), `"result":42`)
}

func TestRun_QuietByDefault(t *testing.T) {
	t.Parallel()

	a, _, logs := newTestApp("6 * 7\n", nil)
	require.NoError(t, a.Run())
	require.Empty(t, logs.String())
}
