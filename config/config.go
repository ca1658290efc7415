// Copyright (C) 2025 IntuneHound Contributors
//
// This file is part of IntuneHound.
//
// IntuneHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// IntuneHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intunehound/intunehound/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Option describes one configuration value: its flag registration, its
// environment binding and its default. Values are resolved through viper so
// flags, environment variables and the config file all feed the same store.
type Option struct {
	Name       string
	Shorthand  string
	Usage      string
	Required   bool
	Persistent bool
	Default    interface{}
}

func (s Option) Value() interface{} {
	return viper.Get(s.Name)
}

func (s Option) Set(value interface{}) {
	viper.Set(s.Name, value)
}

var (
	ConfigFile = Option{
		Name:       "config",
		Shorthand:  "c",
		Usage:      "Location of the configuration file",
		Persistent: true,
		Default:    "",
	}

	OutputFile = Option{
		Name:       "output",
		Shorthand:  "o",
		Usage:      "Path for the output file; defaults to stdout",
		Persistent: true,
		Default:    "",
	}

	Verbosity = Option{
		Name:       "verbosity",
		Shorthand:  "v",
		Usage:      "Verbosity level: 0 (default), 1 (debug), 2 (trace)",
		Persistent: true,
		Default:    0,
	}

	JsonLogs = Option{
		Name:       "json",
		Usage:      "Output logs as json",
		Persistent: true,
		Default:    false,
	}

	LogFile = Option{
		Name:       "log-file",
		Usage:      "Output logs to this file",
		Persistent: true,
		Default:    "",
	}

	Proxy = Option{
		Name:       "proxy",
		Usage:      "Sets the proxy URL for all outbound requests",
		Persistent: true,
		Default:    "",
	}

	AzTenant = Option{
		Name:       "tenant",
		Shorthand:  "t",
		Usage:      "The directory tenant to audit, id or domain",
		Persistent: true,
		Default:    "",
	}

	JWT = Option{
		Name:       "jwt",
		Shorthand:  "j",
		Usage:      "Use an already acquired JWT bearer token for the Graph audience",
		Persistent: true,
		Default:    "",
	}

	AzGraphUrl = Option{
		Name:       "graph-url",
		Usage:      "Sets the Microsoft Graph URL",
		Persistent: true,
		Default:    constants.AzGraphUrl,
	}
)

// GlobalConfig are the options registered on the root command.
func GlobalConfig() []Option {
	return []Option{
		ConfigFile,
		OutputFile,
		Verbosity,
		JsonLogs,
		LogFile,
		Proxy,
		AzTenant,
		JWT,
		AzGraphUrl,
	}
}

// Init registers the given options as flags on the command.
func Init(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		flags := cmd.Flags()
		if option.Persistent {
			flags = cmd.PersistentFlags()
		}

		switch value := option.Default.(type) {
		case string:
			flags.StringP(option.Name, option.Shorthand, value, option.Usage)
		case int:
			flags.IntP(option.Name, option.Shorthand, value, option.Usage)
		case bool:
			flags.BoolP(option.Name, option.Shorthand, value, option.Usage)
		case []string:
			flags.StringSliceP(option.Name, option.Shorthand, value, option.Usage)
		default:
			panic(fmt.Sprintf("unsupported default type for option %s: %T", option.Name, value))
		}

		if option.Required {
			cmd.MarkFlagRequired(option.Name)
		}
	}
}

// LoadValues binds flags and environment variables into viper and reads the
// config file if one is present; a missing config file is not an error.
func LoadValues(cmd *cobra.Command, options []Option) {
	viper.SetEnvPrefix(strings.ToUpper(constants.Name))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, option := range options {
		if cmd != nil {
			flags := cmd.Flags()
			if option.Persistent {
				flags = cmd.PersistentFlags()
			}
			if flag := flags.Lookup(option.Name); flag != nil {
				viper.BindPFlag(option.Name, flag)
			}
		}
		viper.BindEnv(option.Name)
		viper.SetDefault(option.Name, option.Default)
	}

	if configFile, ok := ConfigFile.Value().(string); ok && configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(ConfigDir())
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "unable to read config file: %v\n", err)
		}
	}
}

// ConfigDir is the per-user directory holding the default config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, fmt.Sprintf(".%s", constants.Name))
}

// DefaultConfigFile is where the configure command writes its answers.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
