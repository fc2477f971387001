package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	out    string
	stderr string
	err    error
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	root := newRootCmd()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), stderr: errb.String(), err: err}
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitCLIError
}

func TestRoot_RendersWhenNotATerminal(t *testing.T) {
	r := execute(t, "0.5")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "<svg")
	assert.Contains(t, r.out, `d="M40 40 L40 0 A40 40 0 0 1 40 80 Z"`)
}

func TestRender(t *testing.T) {
	r := execute(t, "render", "75%", "--message", "Syncing headers")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "A40 40 0 1 1 0 40")
	assert.Contains(t, r.out, "url(#loadNetworkGrad)")
	assert.Contains(t, r.out, "Syncing headers")
}

func TestRender_FlagsAndEnv(t *testing.T) {
	t.Setenv("RINGLET_SIZE", "200")
	r := execute(t, "render", "0.25", "--gradient", "openChannelsGrad", "--no-icon")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, `width="200"`)
	assert.Contains(t, r.out, "url(#openChannelsGrad)")
}

func TestRender_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"stroke too wide", []string{"render", "0.5", "--stroke", "50"}, ExitInvalidArg},
		{"unknown gradient", []string{"render", "0.5", "--gradient", "nope"}, ExitInvalidArg},
		{"bad percentage", []string{"render", "lots"}, ExitInvalidArg},
		{"zero size", []string{"render", "0.5", "--size", "0"}, ExitInvalidArg},
		{"bad background", []string{"render", "0.5", "--background", "mauve-ish"}, ExitCLIError},
		{"bad log level", []string{"render", "0.5", "--log-level", "loud"}, ExitCLIError},
		{"missing config", []string{"render", "--config", "/nonexistent/ringlet.yaml"}, ExitCLIError},
		{"too many args", []string{"render", "0.1", "0.2"}, ExitCLIError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := execute(t, tc.args...)
			require.Error(t, r.err)
			assert.Equal(t, tc.code, exitCode(r.err))
			assert.NotContains(t, r.out, "<svg")
		})
	}
}

func TestRender_NegativePercentage(t *testing.T) {
	r := execute(t, "render", "--", "-0.25")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "A40 40 0 0 1 0 40")
}

func TestRender_Out(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.svg")
	r := execute(t, "render", "0.75", "-o", path)
	require.NoError(t, r.err)
	assert.Empty(t, r.out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRender_Save(t *testing.T) {
	r := execute(t, "render", "0.75", "--save")
	require.NoError(t, r.err)

	path := strings.TrimSpace(r.out)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), "ringlet", "rings", "loadNetworkGrad_75pct_80px.svg"), path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRender_ConfigGradients(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ringlet.yaml")
	cfg := `gradient: sunset
gradients:
  sunset: ["0%:#ff8800", "100%:#ff0044"]
`
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0o644))

	r := execute(t, "render", "0.4", "--config", file)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "url(#sunset)")

	r = execute(t, "gradients", "--config", file)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "sunset")
	assert.Contains(t, r.out, "loadNetworkGrad")
}

func TestArc(t *testing.T) {
	r := execute(t, "arc", "0.75")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "angle       270°")
	assert.Contains(t, r.out, "end         0 40")
	assert.Contains(t, r.out, "large-arc   1")
	assert.Contains(t, r.out, "arc         A40 40 0 1 1 0 40")
	assert.Contains(t, r.out, "wedge       M40 40 L40 0 A40 40 0 1 1 0 40 Z")
}

func TestArc_Half(t *testing.T) {
	r := execute(t, "arc", "50%", "--radius", "40")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "large-arc   0")
	assert.Contains(t, r.out, "end         40 80")
}

func TestArc_InvalidRadius(t *testing.T) {
	r := execute(t, "arc", "0.5", "--radius", "0")
	require.Error(t, r.err)
	assert.Equal(t, ExitInvalidArg, exitCode(r.err))
}

func TestGradients(t *testing.T) {
	r := execute(t, "gradients")
	require.NoError(t, r.err)
	lines := strings.Split(strings.TrimSpace(r.out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "loadNetworkGrad"))
	assert.True(t, strings.HasPrefix(lines[1], "openChannelsGrad"))
	assert.Contains(t, lines[0], "0%:")
	assert.Contains(t, lines[0], "100%:")
}

func TestCompletion(t *testing.T) {
	r := execute(t, "completion", "bash")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "ringlet")

	r = execute(t, "completion", "tcsh")
	assert.Error(t, r.err)
}

func TestParsePercentage(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0.75", 0.75, true},
		{"75%", 0.75, true},
		{"3/4", 0.75, true},
		{"1.5", 1.5, true},
		{"", 0, false},
		{"half", 0, false},
		{"50% done", 0, false},
		{"-0.25", -0.25, true},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-inf%", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePercentage(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
