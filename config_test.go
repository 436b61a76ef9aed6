package logkit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
minLevel: trace
maxLevel: 5
defaultDomain: api
transports:
  - type: console
    minLevel: info
    color: false
    indent: false
    timeFormatter: dateTimeMs
  - type: file
    path: /tmp/app.log
    maxSizeMB: 10
    maxBackups: 3
    compress: true
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.MinLevel)
	assert.Equal(t, 5, cfg.MaxLevel)
	assert.Equal(t, "api", cfg.DefaultDomain)
	require.Len(t, cfg.Transports, 2)

	console := cfg.Transports[0]
	assert.Equal(t, "console", console.Type)
	assert.Equal(t, "info", console.MinLevel)
	require.NotNil(t, console.Color)
	assert.False(t, *console.Color)
	require.NotNil(t, console.Indent)
	assert.False(t, *console.Indent)
	assert.Nil(t, console.IncludeIDMeta)
	assert.Equal(t, "dateTimeMs", console.TimeFormat)

	file := cfg.Transports[1]
	assert.Equal(t, "/tmp/app.log", file.Path)
	assert.Equal(t, 10, file.MaxSizeMB)
	assert.Equal(t, 3, file.MaxBackups)
	assert.True(t, file.Compress)

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseConfig([]byte("transports: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigDecode)
	})

	t.Run("no transports key", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("minLevel: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.MinLevel)
		assert.Nil(t, cfg.Transports)
	})
}

func TestSetConfigLevels(t *testing.T) {
	l := New()

	require.NoError(t, l.SetConfig(Config{MinLevel: 0, MaxLevel: "error", DefaultDomain: "svc"}))
	assert.Equal(t, 0, l.MinLevel())
	assert.Equal(t, int(LevelError), l.MaxLevel())
	assert.Equal(t, "svc", l.DefaultDomain())

	require.NoError(t, l.SetConfig(Config{MinLevel: "shouting", MaxLevel: 12}))
	assert.Equal(t, 0, l.MinLevel())
	assert.Equal(t, int(LevelError), l.MaxLevel())
	assert.Equal(t, "svc", l.DefaultDomain())

	require.NoError(t, l.SetConfig(Config{}))
	assert.Equal(t, 0, l.MinLevel())
}

func TestSetConfigReplacesTransports(t *testing.T) {
	l := New()
	old := newRecorder(0, 6)
	l.AddTransport(old)

	require.NoError(t, l.SetConfig(Config{Transports: []TransportConfig{}}))
	assert.Empty(t, l.Transports())
	assert.True(t, old.closed.Load())

	var buf bytes.Buffer
	require.NoError(t, l.SetConfig(Config{Transports: []TransportConfig{
		{Type: "console", Writer: &buf, Color: boolPtr(false)},
	}}))
	require.Len(t, l.Transports(), 1)

	l.Info("cfg", "configured")
	assert.Contains(t, buf.String(), "<cfg> -- configured\n")

	// Leaving Transports nil keeps the current list.
	require.NoError(t, l.SetConfig(Config{MinLevel: "debug"}))
	assert.Len(t, l.Transports(), 1)
}

func TestSetConfigSkipsBadTransports(t *testing.T) {
	var diag bytes.Buffer
	l := New(WithDiagnostics(zerolog.New(&diag)))

	var a, b bytes.Buffer
	err := l.SetConfig(Config{Transports: []TransportConfig{
		{Type: "console", Writer: &a},
		{Type: "carrier-pigeon"},
		{Type: "console", Output: "printer"},
		{Type: "CONSOLE", Writer: &b, MinLevel: "error"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index=1")
	assert.Contains(t, err.Error(), `type="carrier-pigeon"`)
	assert.Contains(t, err.Error(), "index=2")
	assert.Contains(t, diag.String(), "transport skipped")

	ts := l.Transports()
	require.Len(t, ts, 2)
	assert.Equal(t, int(LevelError), ts[1].MinLevel())

	l.Warning(nil, "only the first")
	assert.Contains(t, a.String(), "only the first")
	assert.Empty(t, b.String())
}

func TestSetConfigFactoryFailure(t *testing.T) {
	reg := NewRegistry()
	reg.Register("broken", func(*Logger, TransportConfig) (Transport, error) {
		return nil, errors.New("no backend")
	})
	reg.Register("empty", func(*Logger, TransportConfig) (Transport, error) {
		return nil, nil
	})
	reg.Register("stub", func(*Logger, TransportConfig) (Transport, error) {
		return newRecorder(0, 6), nil
	})

	l := New(WithRegistry(reg))
	err := l.SetConfig(Config{Transports: []TransportConfig{
		{Type: "broken"},
		{Type: "empty"},
		{Type: "stub"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgTransportSkipped)
	assert.Len(t, l.Transports(), 1)

	// The custom registry does not know the built-ins.
	require.Error(t, l.AddTransportByName("console", TransportConfig{}))
}

func TestValidateTransportConfig(t *testing.T) {
	require.Error(t, validateTransportConfig(nil))
	require.Error(t, validateTransportConfig(&TransportConfig{}))
	require.Error(t, validateTransportConfig(&TransportConfig{Type: "file", MaxSizeMB: -1}))
	require.Error(t, validateTransportConfig(&TransportConfig{Type: "console", TimeFormat: "iso"}))
	require.NoError(t, validateTransportConfig(&TransportConfig{Type: "console", TimeFormat: "timeMs", Output: "stderr"}))
}
