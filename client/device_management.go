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
	"fmt"

	"github.com/intunehound/intunehound/client/query"
	"github.com/intunehound/intunehound/constants"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/models/azure"
	"github.com/intunehound/intunehound/pipeline"
)

// defaultListParams asks for the largest page Graph will serve so most
// tenants come back in a single response.
func defaultListParams() query.GraphParams {
	return query.GraphParams{Top: 999}
}

// ListDeviceManagementPolicies streams the policy collection of a category.
// An unrecognized category is reported as an error result before any request
// is issued.
func (s *azureClient) ListDeviceManagementPolicies(ctx context.Context, category enums.PolicyCategory, params query.GraphParams) <-chan AzureResult[azure.DeviceManagementPolicy] {
	out := make(chan AzureResult[azure.DeviceManagementPolicy])

	spec, ok := constants.CategorySpecFor(category)
	if !ok {
		go func() {
			defer close(out)
			pipeline.Send(ctx.Done(), out, AzureResult[azure.DeviceManagementPolicy]{
				Error: fmt.Errorf("%w: %s", ErrUnknownCategory, category),
			})
		}()
		return out
	}

	path := fmt.Sprintf("/%s/%s", constants.GraphApiVersion, spec.ResourcePath)
	go getAzureObjectList[azure.DeviceManagementPolicy](s.msgraph, ctx, path, params, out)

	return out
}

// ListPolicyAssignmentRecords streams the raw assignment records of one
// policy, using the category's assignment segment.
func (s *azureClient) ListPolicyAssignmentRecords(ctx context.Context, category enums.PolicyCategory, policyId string) <-chan AzureResult[azure.PolicyAssignment] {
	out := make(chan AzureResult[azure.PolicyAssignment])

	spec, ok := constants.CategorySpecFor(category)
	if !ok {
		go func() {
			defer close(out)
			pipeline.Send(ctx.Done(), out, AzureResult[azure.PolicyAssignment]{
				Error: fmt.Errorf("%w: %s", ErrUnknownCategory, category),
			})
		}()
		return out
	}

	path := fmt.Sprintf("/%s/%s/%s/%s", constants.GraphApiVersion, spec.ResourcePath, policyId, spec.AssignmentSegment)
	go getAzureObjectList[azure.PolicyAssignment](s.msgraph, ctx, path, nil, out)

	return out
}
