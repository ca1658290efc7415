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

	"github.com/intunehound/intunehound/constants"
	"github.com/intunehound/intunehound/models/azure"
)

// GetGroup fetches one directory group by id. The path is the same for every
// policy category.
// https://learn.microsoft.com/en-us/graph/api/group-get?view=graph-rest-1.0
func (s *azureClient) GetGroup(ctx context.Context, groupId string) (*azure.Group, error) {
	path := fmt.Sprintf("/%s/groups/%s", constants.GraphApiVersion, groupId)
	return getAzureObject[azure.Group](s.msgraph, ctx, path, nil)
}
