package cli

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanwatch/lanwatch/internal/config"
	lwerrors "github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/resolve"
)

// isolateConfig moves the test into an empty directory with an empty HOME
// and clears --config, so the search cannot pick up real files.
func isolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })

	origConfig := configFlag
	configFlag = ""
	t.Cleanup(func() { configFlag = origConfig })

	return dir
}

func TestParseDurationFlag(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "valid seconds",
			flag: "5s",
			want: 5 * time.Second,
		},
		{
			name: "valid milliseconds",
			flag: "500ms",
			want: 500 * time.Millisecond,
		},
		{
			name: "valid complex duration",
			flag: "1m30s",
			want: 90 * time.Second,
		},
		{
			name:    "bare number returns error",
			flag:    "5",
			wantErr: true,
		},
		{
			name:    "word returns error",
			flag:    "fast",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationFlag("--interval", tt.flag)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, lwerrors.IsCode(err, lwerrors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := effectiveConfig(overrides{})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 200*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 50, cfg.Workers)
	assert.False(t, cfg.DNS.Disabled)
}

func TestEffectiveConfig_FlagOverrides(t *testing.T) {
	isolateConfig(t)

	cfg, err := effectiveConfig(overrides{
		interval: "10s",
		timeout:  "500ms",
		workers:  10,
		noDNS:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Interval)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 10, cfg.Workers)
	assert.True(t, cfg.DNS.Disabled)
}

func TestEffectiveConfig_BadDurationFlag(t *testing.T) {
	isolateConfig(t)

	_, err := effectiveConfig(overrides{interval: "fast"})
	require.Error(t, err)
	assert.True(t, lwerrors.IsCode(err, lwerrors.ErrConfig))
}

func TestEffectiveConfig_RejectsOutOfBounds(t *testing.T) {
	isolateConfig(t)

	// Below the minimum sweep interval, so validation rejects it.
	_, err := effectiveConfig(overrides{interval: "100ms"})
	require.Error(t, err)
}

func TestEffectiveConfig_ReadsConfigFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("interval: 30s\nworkers: 25\n"), 0644))

	cfg, err := effectiveConfig(overrides{})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, 25, cfg.Workers)
}

func TestEffectiveConfig_FlagBeatsFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("interval: 30s\n"), 0644))

	cfg, err := effectiveConfig(overrides{interval: "10s"})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Interval)
}

func TestResolvePrefix_ExplicitArg(t *testing.T) {
	prefix, err := resolvePrefix([]string{"10.0.0."}, config.DefaultConfig(), logger.Noop())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.", prefix)
}

func TestResolvePrefix_BadArgRejected(t *testing.T) {
	// Missing the trailing dot. Rejected up front, before any detection.
	_, err := resolvePrefix([]string{"10.0.0"}, config.DefaultConfig(), logger.Noop())
	require.Error(t, err)
	assert.True(t, lwerrors.IsCode(err, lwerrors.ErrSubnet))
}

func TestResolvePrefix_ConfigSubnetWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Subnet = "172.16.0."

	prefix, err := resolvePrefix(nil, cfg, logger.Noop())
	require.NoError(t, err)
	assert.Equal(t, "172.16.0.", prefix)
}

func TestNewResolver_DisabledByConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DNS.Disabled = true

	r := newResolver(cfg, logger.Noop())
	assert.Equal(t, resolve.Unknown, r.Lookup(context.Background(), "192.0.2.1"))
}
