package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHasSubcommands(t *testing.T) {
	want := []string{"watch", "scan", "init", "doctor", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "root should have %q subcommand", name)
	}
}

func TestRootPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}

func TestWatchCommandFlags(t *testing.T) {
	for _, name := range []string{"plain", "no-dns", "interval", "timeout", "workers"} {
		assert.NotNil(t, watchCmd.Flags().Lookup(name), "watch should have --"+name)
	}
}

func TestScanCommandFlags(t *testing.T) {
	for _, name := range []string{"no-dns", "timeout", "workers"} {
		assert.NotNil(t, scanCmd.Flags().Lookup(name), "scan should have --"+name)
	}
}

func TestWatchRejectsExtraArgs(t *testing.T) {
	err := watchCmd.Args(watchCmd, []string{"192.168.1.", "10.0.0."})
	require.Error(t, err)
}

func TestScanRejectsExtraArgs(t *testing.T) {
	err := scanCmd.Args(scanCmd, []string{"192.168.1.", "10.0.0."})
	require.Error(t, err)
}

func TestConfigPathReflectsFlag(t *testing.T) {
	orig := configFlag
	defer func() { configFlag = orig }()

	configFlag = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", ConfigPath())
}
