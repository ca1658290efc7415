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

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/intunehound/intunehound/config"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:          "configure",
	Short:        "Configure IntuneHound interactively",
	Run:          configureCmdImpl,
	SilenceUsage: true,
}

func configureCmdImpl(cmd *cobra.Command, args []string) {
	if err := configure(); err != nil {
		exit(err)
	}
}

func configure() error {
	values := map[string]interface{}{}

	prompts := []struct {
		option config.Option
		label  string
		mask   bool
	}{
		{config.AzTenant, "Directory tenant (id or domain)", false},
		{config.JWT, "Bearer token for the Graph audience", true},
		{config.AzGraphUrl, "Microsoft Graph URL", false},
		{config.Proxy, "Proxy URL (leave empty for none)", false},
	}

	for _, entry := range prompts {
		prompt := promptui.Prompt{
			Label:     entry.label,
			AllowEdit: true,
		}
		if defaultValue, ok := entry.option.Default.(string); ok {
			prompt.Default = defaultValue
		}
		if entry.mask {
			prompt.Mask = '*'
		}

		if value, err := prompt.Run(); err != nil {
			return err
		} else if value != "" {
			values[entry.option.Name] = value
		}
	}

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return err
	}

	path := config.DefaultConfigFile()
	if data, err := json.MarshalIndent(values, "", "  "); err != nil {
		return err
	} else if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	} else {
		fmt.Printf("configuration written to %s\n", path)
		return nil
	}
}
