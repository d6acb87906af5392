// Config loading for the hapbadge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configDirName  = ".hapbadge"

	// Config keys.
	cfgKeyOutput   = "output"
	cfgKeyCategory = "category"
	cfgKeyFlags    = "flags"
)

// loadConfig reads config.yaml from ~/.hapbadge (or the --config file) using
// Viper. A missing config file is not an error; defaults apply.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, "-")
	v.SetDefault(cfgKeyCategory, 1)
	v.SetDefault(cfgKeyFlags, []string{"ip"})

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return v, nil
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(filepath.Join(home, configDirName))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
