package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 30, cfg.Directory.TimeoutSeconds)
	assert.Empty(t, cfg.Directory.Inventory.APIURL)
	assert.Empty(t, cfg.Directory.Inventory.Token)
}

func TestLoadEnvOnlyValues(t *testing.T) {
	viper.Reset()
	t.Setenv("SDC_BOOTER_DIRECTORY_INVENTORY_TOKEN", "s3cret")
	t.Setenv("SDC_BOOTER_DIRECTORY_NETWORK_TOKEN", "s3cret-too")
	t.Setenv("SDC_BOOTER_DIRECTORY_NETWORK_API_URL", "https://netdir.internal:8080")
	t.Setenv("SDC_BOOTER_FORMAT", "yaml")

	cfg, err := Load()
	require.NoError(t, err)

	// Values that appear only in the environment, never in a config file,
	// must still reach the struct.
	assert.Equal(t, "s3cret", cfg.Directory.Inventory.Token)
	assert.Equal(t, "s3cret-too", cfg.Directory.Network.Token)
	assert.Equal(t, "https://netdir.internal:8080", cfg.Directory.Network.APIURL)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoadMixedSources(t *testing.T) {
	viper.Reset()
	viper.Set("directory.timeout_seconds", 10)
	t.Setenv("SDC_BOOTER_DIRECTORY_INVENTORY_INSECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Directory.TimeoutSeconds)
	assert.True(t, cfg.Directory.Inventory.Insecure)
}
