package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Output    string    `mapstructure:"output"`
	Format    string    `mapstructure:"format"` // json, yaml
	Directory Directory `mapstructure:"directory"`
	Identity  Identity  `mapstructure:"identity"`
}

type Directory struct {
	Inventory      Endpoint `mapstructure:"inventory"`
	Network        Endpoint `mapstructure:"network"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

// Endpoint describes one backing directory service.
type Endpoint struct {
	APIURL   string `mapstructure:"api_url"`
	Token    string `mapstructure:"token"`
	Insecure bool   `mapstructure:"insecure"`
}

type Identity struct {
	UUIDFile string `mapstructure:"uuid_file"` // overrides the smbios UUID source
}

// Load decodes the viper state into a typed Config. Every key is registered
// with a default first: viper's Unmarshal only decodes keys it knows about,
// so a key set purely through the environment (SDC_BOOTER_*) would otherwise
// be dropped.
func Load() (*Config, error) {
	viper.SetDefault("output", "")
	viper.SetDefault("format", "json")
	viper.SetDefault("directory.timeout_seconds", 30)
	viper.SetDefault("directory.inventory.api_url", "")
	viper.SetDefault("directory.inventory.token", "")
	viper.SetDefault("directory.inventory.insecure", false)
	viper.SetDefault("directory.network.api_url", "")
	viper.SetDefault("directory.network.token", "")
	viper.SetDefault("directory.network.insecure", false)
	viper.SetDefault("identity.uuid_file", "")

	viper.SetEnvPrefix("SDC_BOOTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
