package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fioncat/wrapgen/hack"
	rerrors "github.com/fioncat/wrapgen/pkg/errors"
	"github.com/fioncat/wrapgen/pkg/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = "@APP_DIR_DECLARATION@\nrun @WRAPPED_BINARY@"

type testEnv struct {
	dir string

	template string
	output   string
	config   string
}

func newTestEnv(t *testing.T, config string) *testEnv {
	dir := t.TempDir()
	env := &testEnv{
		dir:      dir,
		template: filepath.Join(dir, "run.sh.in"),
		output:   filepath.Join(dir, "run.sh"),
	}
	require.NoError(t, os.WriteFile(env.template, []byte(testTemplate), 0644))
	if config != "" {
		env.writeConfig(t, config)
	}
	return env
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	e.config = filepath.Join(e.dir, "config.toml")
	require.NoError(t, os.WriteFile(e.config, []byte(content), 0644))
}

func (e *testEnv) execute(args ...string) (string, error) {
	c := NewRender()
	BindGlobalFlags(c)
	c.AddCommand(NewConfig())
	c.AddCommand(NewInit())
	c.AddCommand(NewPlaceholders())
	c.SilenceErrors = true
	c.SilenceUsage = true

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	args = append(args, "--quiet")
	if e.config != "" {
		args = append(args, "--config", e.config)
	}
	c.SetArgs(args)

	err := c.Execute()
	return out.String(), err
}

func (e *testEnv) readOutput(t *testing.T) string {
	data, err := os.ReadFile(e.output)
	require.NoError(t, err)
	return string(data)
}

func TestRender(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.execute("--mode", "install", "--install-app-dir", "/opt/app",
		"--binary", "sorter", "--template", env.template, "--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, "APP_DIR=\"/opt/app\"\nrun sorter", env.readOutput(t))

	_, err = env.execute("--binary", "sorter", "--template", env.template, "--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, wrapper.DevDeclaration+"\nrun sorter", env.readOutput(t))
}

func TestRenderConfigDefaults(t *testing.T) {
	env := newTestEnv(t, "")
	config := strings.Join([]string{
		`mode = "install"`,
		`install_app_dir = "/usr/lib/sorter"`,
		`binary = "sorter"`,
		`template = "` + env.template + `"`,
	}, "\n")
	env.writeConfig(t, config)

	_, err := env.execute("--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, "APP_DIR=\"/usr/lib/sorter\"\nrun sorter", env.readOutput(t))

	// Explicit flags win over config.
	_, err = env.execute("--mode", "dev", "--binary", "sorter-bin", "--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, wrapper.DevDeclaration+"\nrun sorter-bin", env.readOutput(t))
}

func TestRenderIgnoresHomeConfig(t *testing.T) {
	env := newTestEnv(t, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "wrapgen")
	require.NoError(t, os.MkdirAll(dir, 0755))
	config := "mode = \"install\"\ninstall_app_dir = \"/stale\"\nbinary = \"stale\""
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0644))

	_, err := env.execute("--binary", "sorter", "--template", env.template, "--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, wrapper.DevDeclaration+"\nrun sorter", env.readOutput(t))

	_, err = env.execute("--template", env.template, "--output", env.output)
	assert.NotNil(t, err)
}

func TestRenderConfigKeepsInstallDir(t *testing.T) {
	t.Setenv("WRAPGEN_TEST_PREFIX", "/build-host")
	env := newTestEnv(t, "")
	env.writeConfig(t, `mode = "install"
install_app_dir = "$WRAPGEN_TEST_PREFIX/app"`)

	_, err := env.execute("--binary", "sorter", "--template", env.template, "--output", env.output)
	require.NoError(t, err)
	assert.Equal(t, "APP_DIR=\"$WRAPGEN_TEST_PREFIX/app\"\nrun sorter", env.readOutput(t))
}

func TestRenderModeCompletion(t *testing.T) {
	c := NewRender()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"__complete", "--mode", ""})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "dev\ninstall\n")
}

func TestRenderValidate(t *testing.T) {
	tests := []struct {
		name string

		args []string
	}{
		{
			name: "Test missing output",
			args: []string{"--binary", "sorter"},
		},
		{
			name: "Test missing binary",
			args: []string{"--output", "run.sh"},
		},
		{
			name: "Test bad mode",
			args: []string{"--mode", "release", "--binary", "sorter", "--output", "run.sh"},
		},
		{
			name: "Test install without dir",
			args: []string{"--mode", "install", "--binary", "sorter", "--output", "run.sh"},
		},
		{
			name: "Test extra args",
			args: []string{"sorter", "--binary", "sorter", "--output", "run.sh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			args := append([]string{"--template", env.template}, tt.args...)
			_, err := env.execute(args...)
			assert.NotNil(t, err)

			_, err = os.Stat(filepath.Join(env.dir, "run.sh"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.execute("--binary", "sorter", "--template", filepath.Join(env.dir, "missing.sh.in"), "--output", env.output)
	assert.True(t, errors.Is(err, wrapper.ErrMissingTemplate))

	_, err = os.Stat(env.output)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderWriteError(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.execute("--binary", "sorter", "--template", env.template, "--output", filepath.Join(env.dir, "missing", "run.sh"))
	assert.True(t, errors.Is(err, wrapper.ErrWrite))
}

func TestPlaceholders(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.execute("placeholders", env.template)
	require.NoError(t, err)
	assert.Contains(t, out, wrapper.AppDirPlaceholder)
	assert.Contains(t, out, wrapper.BinaryPlaceholder)

	partial := filepath.Join(env.dir, "partial.sh.in")
	require.NoError(t, os.WriteFile(partial, []byte("run @WRAPPED_BINARY@"), 0644))

	_, err = env.execute("placeholders", partial)
	require.NoError(t, err)

	_, err = env.execute("placeholders", "--strict", partial)
	assert.True(t, errors.Is(err, rerrors.ErrSilenceExit))

	_, err = env.execute("placeholders", filepath.Join(env.dir, "missing.sh.in"))
	assert.True(t, errors.Is(err, wrapper.ErrMissingTemplate))
}

func TestInit(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(env.dir, "scripts", "launcher.sh.in")

	_, err := env.execute("init", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, hack.GetStarterTemplate(), string(data))

	_, err = env.execute("init", path)
	assert.NotNil(t, err)

	_, err = env.execute("init", "--force", path)
	assert.NoError(t, err)

	out, err := env.execute("init", "-")
	require.NoError(t, err)
	assert.Equal(t, hack.GetStarterTemplate(), out)
}

func TestConfig(t *testing.T) {
	env := newTestEnv(t, `binary = "sorter"`)

	out, err := env.execute("config")
	require.NoError(t, err)
	assert.Contains(t, out, `"binary": "sorter"`)
	assert.Contains(t, out, `"mode": "dev"`)
}
