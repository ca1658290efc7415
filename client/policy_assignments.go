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

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/intunehound/intunehound/client/rest"
	"github.com/intunehound/intunehound/constants"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/models"
	"github.com/intunehound/intunehound/models/azure"
)

// ErrUnknownCategory marks a category value with no entry in the category
// table. It is a configuration error and is raised before any request goes
// out.
var ErrUnknownCategory = errors.New("unknown policy category")

// GetPolicyAssignments resolves the group assignments of a single policy:
// the policy's assignment records are fetched, records that do not target a
// group are skipped, and each group reference is joined against the
// directory for its display name. Results preserve the order the service
// returned the assignments in.
//
// A failure fetching the assignment list is fatal. A failure looking up one
// group is not: the group is logged and dropped, and resolution continues.
func (s *azureClient) GetPolicyAssignments(ctx context.Context, category enums.PolicyCategory, policyId string) ([]models.ResolvedAssignment, error) {
	spec, ok := constants.CategorySpecFor(category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	assignments, err := s.fetchAssignmentRecords(ctx, spec, policyId)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch assignments for policy %s: %w", policyId, err)
	}

	return s.resolveGroupAssignments(ctx, spec, assignments), nil
}

// ListPolicyAssignmentSummaries resolves the group assignments of every
// policy in a category. Policies whose assignment fetch fails are warned
// about and omitted; a failure fetching the policy list itself aborts the
// scan with no partial results.
func (s *azureClient) ListPolicyAssignmentSummaries(ctx context.Context, category enums.PolicyCategory) ([]models.PolicySummary, error) {
	spec, ok := constants.CategorySpecFor(category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	summaries := []models.PolicySummary{}
	for result := range s.ListDeviceManagementPolicies(ctx, category, defaultListParams()) {
		if result.Error != nil {
			return nil, fmt.Errorf("unable to list %s policies: %w", category, result.Error)
		}

		policy := result.Ok
		assignments, err := s.fetchAssignmentRecords(ctx, spec, policy.Id)
		if err != nil {
			s.log.Error(err, "unable to fetch assignments for policy, omitting it from results", "policyId", policy.Id, "category", category)
			continue
		}

		resolved := s.resolveGroupAssignments(ctx, spec, assignments)
		summary := models.NewPolicySummary(policy.Id, displayNameFor(spec, policy), policy.Description, category, resolved)
		summary.TenantId = s.tenant.TenantId
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// fetchAssignmentRecords reads the assignment collection of one policy in a
// single request. The collection endpoint wraps its records in a value array.
func (s *azureClient) fetchAssignmentRecords(ctx context.Context, spec constants.CategorySpec, policyId string) ([]azure.PolicyAssignment, error) {
	path := fmt.Sprintf("/%s/%s/%s/%s", constants.GraphApiVersion, spec.ResourcePath, policyId, spec.AssignmentSegment)

	var list struct {
		Value []azure.PolicyAssignment `json:"value"`
	}
	if res, err := s.msgraph.Get(ctx, path, nil, nil); err != nil {
		return nil, err
	} else if err := rest.Decode(res.Body, &list); err != nil {
		return nil, err
	} else {
		return list.Value, nil
	}
}

// resolveGroupAssignments joins each group-targeting assignment against the
// directory, sequentially and in input order. Lookups that fail are dropped
// with a warning rather than failing the whole resolution.
func (s *azureClient) resolveGroupAssignments(ctx context.Context, spec constants.CategorySpec, assignments []azure.PolicyAssignment) []models.ResolvedAssignment {
	resolved := make([]models.ResolvedAssignment, 0, len(assignments))

	for _, assignment := range assignments {
		groupId := groupIdFor(spec, assignment)
		if groupId == "" {
			// not a group target
			continue
		}

		group, err := s.GetGroup(ctx, groupId)
		if err != nil {
			s.log.Error(err, "unable to resolve assignment group, skipping it", "groupId", groupId)
			continue
		}

		s.log.V(1).Info("resolved assignment group", "groupId", group.Id, "groupName", group.DisplayName)
		resolved = append(resolved, models.ResolvedAssignment{
			GroupId:     group.Id,
			GroupName:   group.DisplayName,
			Description: group.Description,
			TargetType:  models.DefaultTargetType,
			Excluded:    isExclusionTarget(assignment),
			TenantId:    s.tenant.TenantId,
		})
	}

	return resolved
}

// groupIdFor extracts an assignment's group reference from the field the
// category keeps it in; the empty string marks a non-group target. Reading
// only the category's declared field is deliberate: a record shaped for the
// wrong category must not resolve.
func groupIdFor(spec constants.CategorySpec, assignment azure.PolicyAssignment) string {
	switch spec.GroupIdField {
	case constants.GroupIdFieldTop:
		return assignment.TargetGroupId
	default:
		return assignment.Target.GroupId
	}
}

func displayNameFor(spec constants.CategorySpec, policy azure.DeviceManagementPolicy) string {
	if spec.DisplayNameField == constants.DisplayNameFieldName {
		return policy.Name
	}
	return policy.DisplayName
}

func isExclusionTarget(assignment azure.PolicyAssignment) bool {
	return strings.Contains(assignment.Target.Type, "exclusionGroupAssignmentTarget")
}
