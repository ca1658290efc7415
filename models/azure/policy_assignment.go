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

package azure

// AssignmentTarget represents the deviceAndAppManagementAssignmentTarget
// resource type; groupId is only present for group targets
// https://learn.microsoft.com/en-us/graph/api/resources/deviceandappmanagementassignmenttarget?view=graph-rest-1.0
type AssignmentTarget struct {
	Type    string `json:"@odata.type,omitempty"`
	GroupId string `json:"groupId,omitempty"`
}

// PolicyAssignment represents one assignment record of a device-management
// policy. Legacy groupAssignment collections carry the group reference at the
// top level as targetGroupId; every other collection nests it under target.
// https://learn.microsoft.com/en-us/graph/api/resources/deviceconfigurationassignment?view=graph-rest-1.0
type PolicyAssignment struct {
	Entity

	TargetGroupId string           `json:"targetGroupId,omitempty"`
	Target        AssignmentTarget `json:"target,omitempty"`
}
