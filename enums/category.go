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

package enums

import "fmt"

// PolicyCategory identifies a class of device-management policy. Each category
// has its own Graph resource shape; the mapping to resource paths and field
// names lives in the constants package.
type PolicyCategory string

const (
	CategoryAutopilotProfile      PolicyCategory = "AutopilotProfile"
	CategoryApplicationProtection PolicyCategory = "ApplicationProtection"
	CategoryConditionalAccess     PolicyCategory = "ConditionalAccess"
	CategoryCompliancePolicies    PolicyCategory = "CompliancePolicies"
	CategoryDeviceConfiguration   PolicyCategory = "DeviceConfiguration"
	CategoryDeviceConfigurationSC PolicyCategory = "DeviceConfigurationSC"
)

// PolicyCategories returns every known category in a stable order.
func PolicyCategories() []PolicyCategory {
	return []PolicyCategory{
		CategoryAutopilotProfile,
		CategoryApplicationProtection,
		CategoryConditionalAccess,
		CategoryCompliancePolicies,
		CategoryDeviceConfiguration,
		CategoryDeviceConfigurationSC,
	}
}

// ParsePolicyCategory maps a user supplied category name to a PolicyCategory.
// Matching is exact; unrecognized values are a configuration error.
func ParsePolicyCategory(value string) (PolicyCategory, error) {
	for _, category := range PolicyCategories() {
		if string(category) == value {
			return category, nil
		}
	}
	return "", fmt.Errorf("unrecognized policy category: %s", value)
}
