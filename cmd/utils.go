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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/proxy"

	"github.com/intunehound/intunehound/client"
	client_config "github.com/intunehound/intunehound/client/config"
	"github.com/intunehound/intunehound/client/rest"
	"github.com/intunehound/intunehound/config"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/logger"
	"github.com/intunehound/intunehound/pipeline"
	"github.com/intunehound/intunehound/sinks"
)

func init() {
	proxy.RegisterDialerType("http", rest.NewProxyDialer)
	proxy.RegisterDialerType("https", rest.NewProxyDialer)
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// need to set config flag value explicitly
	if cmd != nil {
		if configFlag := cmd.Flag(config.ConfigFile.Name).Value.String(); configFlag != "" {
			config.ConfigFile.Set(configFlag)
		}
	}

	config.LoadValues(cmd, config.GlobalConfig())

	if logr, err := logger.GetLogger(); err != nil {
		return err
	} else {
		log = *logr

		if config.ConfigFileUsed() != "" {
			log.V(1).Info(fmt.Sprintf("Config File: %v", config.ConfigFileUsed()))
		}

		if logFile, ok := config.LogFile.Value().(string); ok && logFile != "" {
			log.V(1).Info(fmt.Sprintf("Log File: %v", logFile))
		}

		return nil
	}
}

func gracefulShutdown(stop context.CancelFunc) {
	stop()
}

func testConnections() error {
	proxyUrl := config.Proxy.Value().(string)
	if _, err := rest.Dial(log, proxyUrl, config.AzGraphUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzGraphUrl.Value(), err)
	}
	return nil
}

func newAzureClient() (client.AzureClient, error) {
	config := client_config.Config{
		Tenant:   config.AzTenant.Value().(string),
		JWT:      config.JWT.Value().(string),
		Graph:    config.AzGraphUrl.Value().(string),
		ProxyUrl: config.Proxy.Value().(string),
	}
	return client.NewClient(config, log)
}

func connectAndCreateClient() client.AzureClient {
	log.V(1).Info("testing connections")
	if err := testConnections(); err != nil {
		exit(fmt.Errorf("failed to test connections: %w", err))
	} else if azClient, err := newAzureClient(); err != nil {
		exit(fmt.Errorf("failed to create new Azure client: %w", err))
	} else {
		return azClient
	}

	panic("unexpectedly failed to create azClient without error")
}

type azureWrapper[T any] struct {
	Kind enums.Kind `json:"kind"`
	Data T          `json:"data"`
}

func NewAzureWrapper[T any](kind enums.Kind, data T) azureWrapper[T] {
	return azureWrapper[T]{
		Kind: kind,
		Data: data,
	}
}

func outputStream[T any](ctx context.Context, stream <-chan T) {
	formatted := pipeline.FormatJson(ctx.Done(), stream)
	if path := config.OutputFile.Value().(string); path != "" {
		if err := sinks.WriteToFile(ctx, path, formatted); err != nil {
			exit(fmt.Errorf("failed to write stream to file: %w", err))
		}
	} else {
		sinks.WriteToConsole(ctx, formatted)
	}
}
