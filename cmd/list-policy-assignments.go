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
	"os/signal"
	"strings"
	"time"

	"github.com/intunehound/intunehound/client"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/panicrecovery"
	"github.com/intunehound/intunehound/pipeline"
	"github.com/spf13/cobra"
)

var (
	assignmentCategory string
	assignmentPolicyId string
)

func init() {
	listRootCmd.AddCommand(listPolicyAssignmentsCmd)

	categories := make([]string, 0)
	for _, category := range enums.PolicyCategories() {
		categories = append(categories, string(category))
	}

	listPolicyAssignmentsCmd.Flags().StringVar(&assignmentCategory, "category", "", fmt.Sprintf("Policy category to resolve, one of: %s", strings.Join(categories, ", ")))
	listPolicyAssignmentsCmd.Flags().StringVar(&assignmentPolicyId, "id", "", "Resolve a single policy by its id instead of scanning the whole category")
	listPolicyAssignmentsCmd.MarkFlagRequired("category")
}

var listPolicyAssignmentsCmd = &cobra.Command{
	Use:   "policy-assignments",
	Short: "Resolves which directory groups device-management policies are assigned to",
	Long: `Resolves which directory groups device-management policies are assigned to.

With --id the assignments of that single policy are resolved into group
names. Without it every policy of the category is scanned and reported as a
summary with its assigned groups and assignment count.`,
	Run:          listPolicyAssignmentsCmdImpl,
	SilenceUsage: true,
}

func listPolicyAssignmentsCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	category, err := enums.ParsePolicyCategory(assignmentCategory)
	if err != nil {
		exit(err)
	}

	azClient := connectAndCreateClient()
	log.Info("resolving policy assignments...", "category", category)
	start := time.Now()
	stream := listPolicyAssignments(ctx, azClient, category, assignmentPolicyId)
	panicrecovery.HandleBubbledPanic(ctx, stop, log)
	outputStream(ctx, stream)
	duration := time.Since(start)
	log.Info("resolution completed", "duration", duration.String())
}

func listPolicyAssignments(ctx context.Context, azClient client.AzureClient, category enums.PolicyCategory, policyId string) <-chan any {
	out := make(chan any)

	go func() {
		defer panicrecovery.PanicRecovery()
		defer close(out)

		if policyId != "" {
			assignments, err := azClient.GetPolicyAssignments(ctx, category, policyId)
			if err != nil {
				log.Error(err, "unable to resolve policy assignments", "policyId", policyId)
				return
			}
			for _, assignment := range assignments {
				if ok := pipeline.SendAny(ctx.Done(), out, NewAzureWrapper(enums.KindPolicyAssignment, assignment)); !ok {
					return
				}
			}
			log.V(1).Info("finished resolving policy assignments", "policyId", policyId, "count", len(assignments))
			return
		}

		summaries, err := azClient.ListPolicyAssignmentSummaries(ctx, category)
		if err != nil {
			log.Error(err, "unable to scan policy assignments", "category", category)
			return
		}
		for _, summary := range summaries {
			log.V(2).Info("found policy", "policy", summary.DisplayName, "assignments", summary.AssignmentCount)
			if ok := pipeline.SendAny(ctx.Done(), out, NewAzureWrapper(enums.KindPolicySummary, summary)); !ok {
				return
			}
		}
		log.V(1).Info("finished scanning policy assignments", "category", category, "count", len(summaries))
	}()

	return out
}
