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
	"os"

	"github.com/go-logr/logr"
	"github.com/intunehound/intunehound/config"
	"github.com/intunehound/intunehound/constants"
	"github.com/spf13/cobra"
)

var log logr.Logger

var rootCmd = &cobra.Command{
	Use:               constants.Name,
	Short:             constants.Description,
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func init() {
	config.Init(rootCmd, config.GlobalConfig())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
