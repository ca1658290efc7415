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

package models

import "github.com/intunehound/intunehound/enums"

// DefaultTargetType is the tag reported for every resolved assignment target.
// The upstream tooling this mirrors always reported the group-assignment
// fallback tag regardless of the actual odata type, and consumers depend on
// that.
const DefaultTargetType = "groupAssignmentTarget"

// ResolvedAssignment is the result of joining an assignment's group reference
// against the directory: the group id together with its human-readable name.
type ResolvedAssignment struct {
	GroupId     string `json:"groupId"`
	GroupName   string `json:"groupName"`
	Description string `json:"description,omitempty"`
	TargetType  string `json:"targetType,omitempty"`
	Excluded    bool   `json:"excluded,omitempty"`
	TenantId    string `json:"tenantId,omitempty"`
}

// PolicySummary reports one policy together with its resolved group
// assignments. AssignmentCount always equals len(AssignedGroups); use
// NewPolicySummary so the two cannot drift apart.
type PolicySummary struct {
	Id              string               `json:"id"`
	DisplayName     string               `json:"displayName"`
	Description     string               `json:"description,omitempty"`
	Category        enums.PolicyCategory `json:"category"`
	AssignedGroups  []string             `json:"assignedGroups"`
	AssignmentCount int                  `json:"assignmentCount"`
	TenantId        string               `json:"tenantId,omitempty"`
}

func NewPolicySummary(id, displayName, description string, category enums.PolicyCategory, assignments []ResolvedAssignment) PolicySummary {
	groups := make([]string, len(assignments))
	for i, assignment := range assignments {
		groups[i] = assignment.GroupName
	}
	return PolicySummary{
		Id:              id,
		DisplayName:     displayName,
		Description:     description,
		Category:        category,
		AssignedGroups:  groups,
		AssignmentCount: len(groups),
	}
}
