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

package constants

import "github.com/intunehound/intunehound/enums"

const (
	GraphApiVersion     string = "v1.0"
	GraphApiBetaVersion string = "beta"

	AzGraphUrl string = "https://graph.microsoft.com"
	AzAuthUrl  string = "https://login.microsoftonline.com"

	Name        string = "intunehound"
	DisplayName string = "IntuneHound"
	Description string = "Device-management policy assignment auditor for Microsoft Graph"
)

// Field names and assignment segments used by the per-category resource shapes.
const (
	SegmentAssignments      string = "assignments"
	SegmentGroupAssignments string = "groupAssignments"

	DisplayNameFieldDefault string = "displayName"
	DisplayNameFieldName    string = "name"

	// GroupIdFieldTarget reads the group reference from the assignment's
	// nested target object; GroupIdFieldTop reads it from the legacy
	// top-level targetGroupId property of groupAssignment records.
	GroupIdFieldTarget string = "target.groupId"
	GroupIdFieldTop    string = "targetGroupId"
)

// CategorySpec describes how a single policy category is laid out on the wire:
// the collection path under the Graph API version segment, the segment that
// holds its assignment records, where an assignment keeps its group reference
// and which property carries the policy display name.
type CategorySpec struct {
	ResourcePath      string
	AssignmentSegment string
	GroupIdField      string
	DisplayNameField  string
}

// categorySpecs is consulted, never mutated. It is total over
// enums.PolicyCategories; CategorySpecFor enforces that at the call site.
var categorySpecs = map[enums.PolicyCategory]CategorySpec{
	enums.CategoryAutopilotProfile: {
		ResourcePath:      "deviceManagement/windowsAutopilotDeploymentProfiles",
		AssignmentSegment: SegmentAssignments,
		GroupIdField:      GroupIdFieldTarget,
		DisplayNameField:  DisplayNameFieldDefault,
	},
	enums.CategoryApplicationProtection: {
		ResourcePath:      "deviceAppManagement/managedAppPolicies",
		AssignmentSegment: SegmentAssignments,
		GroupIdField:      GroupIdFieldTarget,
		DisplayNameField:  DisplayNameFieldDefault,
	},
	enums.CategoryConditionalAccess: {
		ResourcePath:      "identity/conditionalAccess/policies",
		AssignmentSegment: SegmentAssignments,
		GroupIdField:      GroupIdFieldTarget,
		DisplayNameField:  DisplayNameFieldDefault,
	},
	enums.CategoryCompliancePolicies: {
		ResourcePath:      "deviceManagement/deviceCompliancePolicies",
		AssignmentSegment: SegmentAssignments,
		GroupIdField:      GroupIdFieldTarget,
		DisplayNameField:  DisplayNameFieldDefault,
	},
	enums.CategoryDeviceConfiguration: {
		ResourcePath:      "deviceManagement/deviceConfigurations",
		AssignmentSegment: SegmentGroupAssignments,
		GroupIdField:      GroupIdFieldTop,
		DisplayNameField:  DisplayNameFieldDefault,
	},
	enums.CategoryDeviceConfigurationSC: {
		ResourcePath:      "deviceManagement/configurationPolicies",
		AssignmentSegment: SegmentAssignments,
		GroupIdField:      GroupIdFieldTarget,
		DisplayNameField:  DisplayNameFieldName,
	},
}

// CategorySpecFor resolves the wire layout for a category. The bool reports
// whether the category is known; callers must treat false as a configuration
// error and issue no network request.
func CategorySpecFor(category enums.PolicyCategory) (CategorySpec, bool) {
	spec, ok := categorySpecs[category]
	return spec, ok
}
