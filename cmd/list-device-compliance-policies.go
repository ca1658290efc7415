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
	"os"
	"os/signal"
	"time"

	"github.com/intunehound/intunehound/client"
	"github.com/intunehound/intunehound/client/query"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/panicrecovery"
	"github.com/intunehound/intunehound/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	listRootCmd.AddCommand(listDeviceCompliancePoliciesCmd)
}

var listDeviceCompliancePoliciesCmd = &cobra.Command{
	Use:          "device-compliance-policies",
	Long:         "Lists Intune device compliance policies",
	SilenceUsage: true,
	Run:          listDeviceCompliancePoliciesCmdImpl,
}

func listDeviceCompliancePoliciesCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	azClient := connectAndCreateClient()
	log.V(1).Info("collecting device compliance policies")
	start := time.Now()
	stream := listDeviceCompliancePolicies(ctx, azClient)
	panicrecovery.HandleBubbledPanic(ctx, stop, log)
	outputStream(ctx, stream)
	duration := time.Since(start)
	log.V(1).Info("collection completed", "duration", duration.String())
}

func listDeviceCompliancePolicies(ctx context.Context, azClient client.AzureClient) <-chan interface{} {
	var (
		out = make(chan interface{})
	)

	go func() {
		defer panicrecovery.PanicRecovery()
		defer close(out)
		count := 0

		for item := range azClient.ListDeviceManagementPolicies(ctx, enums.CategoryCompliancePolicies, query.GraphParams{}) {
			if item.Error != nil {
				log.Error(item.Error, "unable to continue processing device compliance policies")
				return
			} else {
				log.V(2).Info("found device compliance policy", "deviceCompliancePolicy", item.Ok.DisplayName)
				count++
				if ok := pipeline.SendAny(ctx.Done(), out, NewAzureWrapper(enums.KindPolicy, item.Ok)); !ok {
					return
				}
			}
		}
		log.V(1).Info("finished listing device compliance policies", "count", count)
	}()

	return out
}
