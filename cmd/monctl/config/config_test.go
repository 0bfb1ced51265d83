package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("monctl", pflag.ContinueOnError)
	fs.StringVar(&opts.Host, "host", "127.0.0.1", "")
	fs.IntVar(&opts.Port, "port", 8080, "")
	fs.StringVar(&opts.User, "user", "", "")
	fs.StringVar(&opts.Password, "password", "", "")
	fs.StringVar(&opts.URL, "url", "", "")
	fs.StringVar(&opts.LogLevel, "log-level", "ERROR", "")
	fs.IntVar(&opts.Timeout, "timeout", 8, "")
	fs.StringVar(&opts.Output, "output", "table", "")
	return fs
}

func validOptions() *Options {
	return &Options{Host: "127.0.0.1", Port: 8080, LogLevel: "ERROR", Timeout: 8, Output: "table"}
}

func TestBaseURL(t *testing.T) {
	opts := &Options{Host: "nagios.example.com", Port: 6315}
	assert.Equal(t, "http://nagios.example.com:6315", opts.BaseURL())

	opts = &Options{Host: "::1", Port: 8080}
	assert.Equal(t, "http://[::1]:8080", opts.BaseURL())

	opts.URL = "https://monitor.example.com/api/"
	assert.Equal(t, "https://monitor.example.com/api", opts.BaseURL())
}

func TestRequestTimeoutAndOutput(t *testing.T) {
	opts := &Options{Timeout: 3, Output: "json"}
	assert.Equal(t, 3*time.Second, opts.RequestTimeout())
	assert.True(t, opts.JSONOutput())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validOptions()))

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"bad port", func(o *Options) { o.Port = 70000 }},
		{"bad host", func(o *Options) { o.Host = "bad host" }},
		{"bad url", func(o *Options) { o.URL = "ftp://x" }},
		{"bad output", func(o *Options) { o.Output = "yaml" }},
		{"bad log level", func(o *Options) { o.LogLevel = "TRACE" }},
		{"negative timeout", func(o *Options) { o.Timeout = -1 }},
		{"password without user", func(o *Options) { o.Password = "secret" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(opts)
			assert.Error(t, Validate(opts))
		})
	}
}

func TestValidateURLSkipsHostPort(t *testing.T) {
	opts := validOptions()
	opts.Host = ""
	opts.Port = 0
	opts.URL = "http://monitor.example.com:6315"
	assert.NoError(t, Validate(opts))
}

func TestLoadFlagsOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := &Options{}
	fs := newFlagSet(opts)
	require.NoError(t, fs.Parse([]string{"--host", "10.0.0.5", "--port", "6315"}))
	require.NoError(t, Load(fs, opts))

	assert.Equal(t, "10.0.0.5", opts.Host)
	assert.Equal(t, 6315, opts.Port)
	assert.Equal(t, "table", opts.Output)
}

func TestLoadEnvironmentAndFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MONCTL_USER", "envuser")
	t.Setenv("MONCTL_LOG_LEVEL", "DEBUG")

	path := filepath.Join(t.TempDir(), "monctl.yaml")
	content := "host: monitor.example.com\nport: 6315\nuser: fileuser\npassword: s3cret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	opts := &Options{ConfigFile: path}
	fs := newFlagSet(opts)
	require.NoError(t, fs.Parse([]string{"--port", "9000"}))
	require.NoError(t, Load(fs, opts))

	assert.Equal(t, "monitor.example.com", opts.Host, "file fills unset flag")
	assert.Equal(t, 9000, opts.Port, "explicit flag wins over file")
	assert.Equal(t, "envuser", opts.User, "environment wins over file")
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, "DEBUG", opts.LogLevel)
}

func TestLoadGlobalConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("url: https://monitor.example.com/api\n"), 0o600))

	opts := &Options{}
	fs := newFlagSet(opts)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Load(fs, opts))

	assert.Equal(t, "https://monitor.example.com/api", opts.URL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	opts := &Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}
	fs := newFlagSet(opts)
	require.NoError(t, fs.Parse(nil))
	assert.Error(t, Load(fs, opts))
}
