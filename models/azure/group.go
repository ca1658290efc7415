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

// Group represents an Azure AD security or distribution group
// https://learn.microsoft.com/en-us/graph/api/resources/group?view=graph-rest-1.0
type Group struct {
	Entity

	DisplayName     string `json:"displayName,omitempty"`
	Description     string `json:"description,omitempty"`
	SecurityEnabled bool   `json:"securityEnabled,omitempty"`
	MailEnabled     bool   `json:"mailEnabled,omitempty"`
}
