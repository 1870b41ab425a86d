// Package config loads the options of the decimalctl command.
package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override options,
// for example DECIMALCTL_LOG_LEVEL or DECIMALCTL_GENERATE_SIZE.
const EnvPrefix = "DECIMALCTL"

type Options struct {
	LogLevel string `mapstructure:"log_level"`

	Generate GenerateOptions `mapstructure:"generate"`

	Oracle struct {
		Precision uint32 `mapstructure:"precision"`
	} `mapstructure:"oracle"`

	Format struct {
		Scientific bool `mapstructure:"scientific"`
	} `mapstructure:"format"`
}

type GenerateOptions struct {
	Size int      `mapstructure:"size"`
	Seed uint64   `mapstructure:"seed"`
	Ops  []string `mapstructure:"ops"`
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("log_level", "info")

	viper.SetDefault("generate.size", 1000)
	viper.SetDefault("generate.seed", 1)
	viper.SetDefault("generate.ops", []string{"add", "sub", "mul", "div", "rem"})

	viper.SetDefault("oracle.precision", 100)

	viper.SetDefault("format.scientific", false)
}

// Load reads options from the environment and, if configFile is not empty,
// from the config file. Flags bound with viper.BindPFlag take precedence.
func Load(configFile string) (Options, error) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.AddConfigPath(path.Dir(configFile))
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("reading config %v: %w", configFile, err)
		}
	}

	var opts Options
	if err := viper.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decoding config: %w", err)
	}
	return opts, nil
}
