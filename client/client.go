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
	"net/http"
	"net/url"

	"github.com/go-logr/logr"
	"github.com/intunehound/intunehound/client/config"
	"github.com/intunehound/intunehound/client/query"
	"github.com/intunehound/intunehound/client/rest"
	"github.com/intunehound/intunehound/constants"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/models"
	"github.com/intunehound/intunehound/models/azure"
	"github.com/intunehound/intunehound/panicrecovery"
	"github.com/intunehound/intunehound/pipeline"
)

// AzureClient is the surface the commands program against. The logger handed
// to NewClient is optional in the sense that logr.Discard() is a valid,
// silent configuration.
type AzureClient interface {
	GetOrganization(ctx context.Context) (*azure.Organization, error)
	GetGroup(ctx context.Context, groupId string) (*azure.Group, error)

	ListDeviceManagementPolicies(ctx context.Context, category enums.PolicyCategory, params query.GraphParams) <-chan AzureResult[azure.DeviceManagementPolicy]
	ListPolicyAssignmentRecords(ctx context.Context, category enums.PolicyCategory, policyId string) <-chan AzureResult[azure.PolicyAssignment]

	GetPolicyAssignments(ctx context.Context, category enums.PolicyCategory, policyId string) ([]models.ResolvedAssignment, error)
	ListPolicyAssignmentSummaries(ctx context.Context, category enums.PolicyCategory) ([]models.PolicySummary, error)

	TenantInfo() azure.Tenant
	CloseIdleConnections()
}

// NewClient validates the session token's audience when one is inspectable
// and bootstraps the tenant descriptor from the organization endpoint.
func NewClient(config config.Config, log logr.Logger) (AzureClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	} else if msgraph, err := rest.NewRestClient(config.GraphUrl(), config); err != nil {
		return nil, err
	} else {
		if aud, err := rest.ParseAud(config.JWT); err == nil && aud != config.GraphUrl() {
			return nil, fmt.Errorf("error: invalid token audience %s, expected %s", aud, config.GraphUrl())
		}

		client := &azureClient{
			msgraph: msgraph,
			log:     log,
		}

		if org, err := client.GetOrganization(context.Background()); err != nil {
			return nil, fmt.Errorf("unable to read organization details: %w", err)
		} else {
			client.tenant = org.ToTenant()
			return client, nil
		}
	}
}

type azureClient struct {
	msgraph rest.RestClient
	tenant  azure.Tenant
	log     logr.Logger
}

func (s *azureClient) TenantInfo() azure.Tenant {
	return s.tenant
}

func (s *azureClient) CloseIdleConnections() {
	s.msgraph.CloseIdleConnections()
}

type AzureResult[T any] struct {
	Error error
	Ok    T
}

// getAzureObjectList streams every element of a Graph collection endpoint
// into out, following nextLink pages until the collection is exhausted.
func getAzureObjectList[T any](client rest.RestClient, ctx context.Context, path string, params query.Params, out chan AzureResult[T]) {
	defer panicrecovery.PanicRecovery()
	defer close(out)

	var (
		errResult AzureResult[T]
		nextLink  string
	)

	for {
		var (
			list struct {
				CountGraph    int    `json:"@odata.count,omitempty"`
				NextLinkGraph string `json:"@odata.nextLink,omitempty"`
				ContextGraph  string `json:"@odata.context,omitempty"`
				Value         []T    `json:"value"`
			}
			res *http.Response
			err error
		)

		if nextLink != "" {
			if nextUrl, err := url.Parse(nextLink); err != nil {
				errResult.Error = err
				_ = pipeline.Send(ctx.Done(), out, errResult)
				return
			} else {
				paramsMap := make(map[string]string)
				if params != nil {
					paramsMap = params.AsMap()
				}
				if req, err := rest.NewRequest(ctx, "GET", nextUrl, nil, paramsMap, nil); err != nil {
					errResult.Error = err
					_ = pipeline.Send(ctx.Done(), out, errResult)
					return
				} else if res, err = client.Send(req); err != nil {
					errResult.Error = err
					_ = pipeline.Send(ctx.Done(), out, errResult)
					return
				}
			}
		} else {
			if res, err = client.Get(ctx, path, params, nil); err != nil {
				errResult.Error = err
				_ = pipeline.Send(ctx.Done(), out, errResult)
				return
			}
		}

		if err := rest.Decode(res.Body, &list); err != nil {
			errResult.Error = err
			_ = pipeline.Send(ctx.Done(), out, errResult)
			return
		} else {
			for _, u := range list.Value {
				if ok := pipeline.Send(ctx.Done(), out, AzureResult[T]{Ok: u}); !ok {
					return
				}
			}
		}

		if list.NextLinkGraph == "" {
			break
		}
		nextLink = list.NextLinkGraph
	}
}

// getAzureObject fetches a single flat entity.
func getAzureObject[T any](client rest.RestClient, ctx context.Context, path string, params query.Params) (*T, error) {
	var entity T
	if res, err := client.Get(ctx, path, params, nil); err != nil {
		return nil, err
	} else if err := rest.Decode(res.Body, &entity); err != nil {
		return nil, err
	} else {
		return &entity, nil
	}
}

// GetOrganization https://learn.microsoft.com/en-us/graph/api/organization-get?view=graph-rest-1.0
func (s *azureClient) GetOrganization(ctx context.Context) (*azure.Organization, error) {
	path := fmt.Sprintf("/%s/organization", constants.GraphApiVersion)
	var list struct {
		Value []azure.Organization `json:"value"`
	}
	if res, err := s.msgraph.Get(ctx, path, nil, nil); err != nil {
		return nil, err
	} else if err := rest.Decode(res.Body, &list); err != nil {
		return nil, err
	} else if len(list.Value) == 0 {
		return nil, fmt.Errorf("no organization returned for tenant")
	} else {
		return &list.Value[0], nil
	}
}
