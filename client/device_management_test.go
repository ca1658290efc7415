package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/intunehound/intunehound/client/config"
	"github.com/intunehound/intunehound/client/rest"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/models/azure"
)

func TestListDeviceManagementPolicies(t *testing.T) {
	t.Run("follows nextLink pages in order", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		mux.HandleFunc("/v1.0/deviceManagement/deviceCompliancePolicies", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, fmt.Sprintf(`{
				"@odata.nextLink": "%s/v1.0/deviceManagement/deviceCompliancePolicies/page2",
				"value": [{"id": "p1", "displayName": "Baseline"}, {"id": "p2", "displayName": "BitLocker"}]
			}`, server.URL))
		})
		mux.HandleFunc("/v1.0/deviceManagement/deviceCompliancePolicies/page2", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "p3", "displayName": "Firewall"}]}`)
		})

		restClient, err := rest.NewRestClient(server.URL, config.Config{Tenant: "contoso", JWT: "token"})
		require.NoError(t, err)
		c := &azureClient{msgraph: restClient, log: logr.Discard()}

		var ids []string
		for result := range c.ListDeviceManagementPolicies(context.Background(), enums.CategoryCompliancePolicies, defaultListParams()) {
			require.NoError(t, result.Error)
			ids = append(ids, result.Ok.Id)
		}
		require.Equal(t, []string{"p1", "p2", "p3"}, ids)
	})

	t.Run("unknown category yields a single error result", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}), logr.Discard())

		results := []AzureResult[azure.DeviceManagementPolicy]{}
		for result := range c.ListDeviceManagementPolicies(context.Background(), enums.PolicyCategory("Bogus"), defaultListParams()) {
			results = append(results, result)
		}
		require.Len(t, results, 1)
		require.ErrorIs(t, results[0].Error, ErrUnknownCategory)
	})
}

func TestListPolicyAssignmentRecords(t *testing.T) {
	t.Run("streams the category's assignment segment", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1.0/deviceManagement/deviceConfigurations/dc1/groupAssignments", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "a1", "targetGroupId": "G1"}]}`)
		})

		c := newTestClient(t, mux, logr.Discard())

		var records []azure.PolicyAssignment
		for result := range c.ListPolicyAssignmentRecords(context.Background(), enums.CategoryDeviceConfiguration, "dc1") {
			require.NoError(t, result.Error)
			records = append(records, result.Ok)
		}
		require.Len(t, records, 1)
		require.Equal(t, "G1", records[0].TargetGroupId)
	})
}
