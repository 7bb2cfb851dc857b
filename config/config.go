// Package config registers every setting pftv understands and loads them through viper.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a config key into the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// EnvName returns the environment variable that overrides k, e.g. PFTV_DATE_FORMAT.
func EnvName(k string) string {
	return strings.ToUpper(constant.Pftv + "_" + EnvKeyReplacer.Replace(k))
}

// File is the path of the TOML config file.
func File() string {
	return filepath.Join(where.Config(), constant.Pftv+".toml")
}

// Setup loads defaults, then the config file if there is one, with environment
// variables taking precedence over both.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Pftv)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Pftv)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for k, field := range Default {
		viper.SetDefault(k, field.Value)
		if err := viper.BindEnv(k); err != nil {
			return err
		}
	}

	err := viper.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return nil
	}
	return err
}
