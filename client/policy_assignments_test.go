package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/intunehound/intunehound/client/config"
	"github.com/intunehound/intunehound/client/rest"
	"github.com/intunehound/intunehound/enums"
	"github.com/intunehound/intunehound/models/azure"
)

func newTestClient(t *testing.T, handler http.Handler, log logr.Logger) *azureClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	restClient, err := rest.NewRestClient(server.URL, config.Config{Tenant: "contoso", JWT: "token"})
	require.NoError(t, err)

	return &azureClient{
		msgraph: restClient,
		tenant:  azure.Tenant{TenantId: "tenant-1"},
		log:     log,
	}
}

func writeJson(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func notFound(w http.ResponseWriter) {
	writeJson(w, http.StatusNotFound, `{"error": {"code": "ResourceNotFound", "message": "resource not found"}}`)
}

const complianceAssignmentsFixture = `{"value": [
	{"id": "a1", "target": {"@odata.type": "#microsoft.graph.groupAssignmentTarget", "groupId": "G1"}},
	{"id": "a2", "target": {"@odata.type": "#microsoft.graph.allDevicesAssignmentTarget"}},
	{"id": "a3", "target": {"@odata.type": "#microsoft.graph.exclusionGroupAssignmentTarget", "groupId": "G2"}}
]}`

func complianceHandler(groupsDown map[string]bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1.0/deviceManagement/deviceCompliancePolicies/policy-1/assignments", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, complianceAssignmentsFixture)
	})
	mux.HandleFunc("/v1.0/groups/G1", func(w http.ResponseWriter, r *http.Request) {
		if groupsDown["G1"] {
			notFound(w)
			return
		}
		writeJson(w, http.StatusOK, `{"id": "G1", "displayName": "Pilot Devices", "description": "ring 0"}`)
	})
	mux.HandleFunc("/v1.0/groups/G2", func(w http.ResponseWriter, r *http.Request) {
		if groupsDown["G2"] {
			notFound(w)
			return
		}
		writeJson(w, http.StatusOK, `{"id": "G2", "displayName": "Quarantine"}`)
	})
	return mux
}

func TestGetPolicyAssignments(t *testing.T) {
	t.Run("resolves group targets in source order", func(t *testing.T) {
		c := newTestClient(t, complianceHandler(nil), logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.NoError(t, err)
		require.Len(t, resolved, 2)

		require.Equal(t, "G1", resolved[0].GroupId)
		require.Equal(t, "Pilot Devices", resolved[0].GroupName)
		require.Equal(t, "ring 0", resolved[0].Description)
		require.False(t, resolved[0].Excluded)

		require.Equal(t, "G2", resolved[1].GroupId)
		require.Equal(t, "Quarantine", resolved[1].GroupName)
		require.True(t, resolved[1].Excluded)

		for _, assignment := range resolved {
			require.Equal(t, "groupAssignmentTarget", assignment.TargetType)
			require.Equal(t, "tenant-1", assignment.TenantId)
		}
	})

	t.Run("skips groups that fail to resolve", func(t *testing.T) {
		c := newTestClient(t, complianceHandler(map[string]bool{"G2": true}), logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		require.Equal(t, "G1", resolved[0].GroupId)
	})

	t.Run("unknown category fails before any request", func(t *testing.T) {
		var requests atomic.Int64
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			notFound(w)
		}), logr.Discard())

		_, err := c.GetPolicyAssignments(context.Background(), enums.PolicyCategory("Bogus"), "policy-1")
		require.ErrorIs(t, err, ErrUnknownCategory)
		require.Zero(t, requests.Load())
	})

	t.Run("assignment fetch failure is fatal", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			notFound(w)
		}), logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.Error(t, err)
		require.Nil(t, resolved)
	})

	t.Run("identical fixtures yield identical output", func(t *testing.T) {
		c := newTestClient(t, complianceHandler(nil), logr.Discard())

		first, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.NoError(t, err)
		second, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func scanHandler(failingPolicy string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1.0/deviceManagement/deviceCompliancePolicies", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, `{"value": [
			{"id": "p1", "displayName": "Baseline", "description": "baseline settings"},
			{"id": "p2", "displayName": "BitLocker"},
			{"id": "p3", "displayName": "Firewall"},
			{"id": "p4", "displayName": "Defender"},
			{"id": "p5", "displayName": "Password"}
		]}`)
	})
	for _, policyId := range []string{"p1", "p2", "p3", "p4", "p5"} {
		policyId := policyId
		mux.HandleFunc(fmt.Sprintf("/v1.0/deviceManagement/deviceCompliancePolicies/%s/assignments", policyId), func(w http.ResponseWriter, r *http.Request) {
			if policyId == failingPolicy {
				notFound(w)
				return
			}
			writeJson(w, http.StatusOK, `{"value": [
				{"id": "a1", "target": {"@odata.type": "#microsoft.graph.groupAssignmentTarget", "groupId": "G1"}}
			]}`)
		})
	}
	mux.HandleFunc("/v1.0/groups/G1", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, `{"id": "G1", "displayName": "Pilot Devices"}`)
	})
	return mux
}

func TestListPolicyAssignmentSummaries(t *testing.T) {
	t.Run("omits policies whose assignment fetch fails", func(t *testing.T) {
		var warnings []string
		log := funcr.New(func(prefix, args string) {
			warnings = append(warnings, args)
		}, funcr.Options{})

		c := newTestClient(t, scanHandler("p3"), log)

		summaries, err := c.ListPolicyAssignmentSummaries(context.Background(), enums.CategoryCompliancePolicies)
		require.NoError(t, err)
		require.Len(t, summaries, 4)

		ids := make([]string, 0, len(summaries))
		for _, summary := range summaries {
			ids = append(ids, summary.Id)
			require.Equal(t, len(summary.AssignedGroups), summary.AssignmentCount)
			require.Equal(t, enums.CategoryCompliancePolicies, summary.Category)
		}
		require.Equal(t, []string{"p1", "p2", "p4", "p5"}, ids)

		warned := false
		for _, line := range warnings {
			if strings.Contains(line, "p3") {
				warned = true
			}
		}
		require.True(t, warned, "expected a warning naming the omitted policy")
	})

	t.Run("summary fields derive from the policy and its groups", func(t *testing.T) {
		c := newTestClient(t, scanHandler(""), logr.Discard())

		summaries, err := c.ListPolicyAssignmentSummaries(context.Background(), enums.CategoryCompliancePolicies)
		require.NoError(t, err)
		require.Len(t, summaries, 5)

		require.Equal(t, "Baseline", summaries[0].DisplayName)
		require.Equal(t, "baseline settings", summaries[0].Description)
		require.Equal(t, []string{"Pilot Devices"}, summaries[0].AssignedGroups)
		require.Equal(t, 1, summaries[0].AssignmentCount)
		require.Equal(t, "tenant-1", summaries[0].TenantId)
	})

	t.Run("policy list failure aborts with no partial results", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			notFound(w)
		}), logr.Discard())

		summaries, err := c.ListPolicyAssignmentSummaries(context.Background(), enums.CategoryCompliancePolicies)
		require.Error(t, err)
		require.Nil(t, summaries)
	})

	t.Run("unknown category fails before any request", func(t *testing.T) {
		var requests atomic.Int64
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			notFound(w)
		}), logr.Discard())

		_, err := c.ListPolicyAssignmentSummaries(context.Background(), enums.PolicyCategory("Bogus"))
		require.ErrorIs(t, err, ErrUnknownCategory)
		require.Zero(t, requests.Load())
	})

	t.Run("settings catalog policies report their name field", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1.0/deviceManagement/configurationPolicies", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "sc1", "name": "Surface Hardening", "displayName": "ignored"}]}`)
		})
		mux.HandleFunc("/v1.0/deviceManagement/configurationPolicies/sc1/assignments", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": []}`)
		})

		c := newTestClient(t, mux, logr.Discard())

		summaries, err := c.ListPolicyAssignmentSummaries(context.Background(), enums.CategoryDeviceConfigurationSC)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.Equal(t, "Surface Hardening", summaries[0].DisplayName)
		require.Zero(t, summaries[0].AssignmentCount)
	})
}

func TestGroupIdFieldPerCategory(t *testing.T) {
	t.Run("device configuration reads targetGroupId", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1.0/deviceManagement/deviceConfigurations/dc1/groupAssignments", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "a1", "targetGroupId": "G1"}]}`)
		})
		mux.HandleFunc("/v1.0/groups/G1", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"id": "G1", "displayName": "Pilot Devices"}`)
		})

		c := newTestClient(t, mux, logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryDeviceConfiguration, "dc1")
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		require.Equal(t, "G1", resolved[0].GroupId)
	})

	t.Run("device configuration ignores nested target groupId", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1.0/deviceManagement/deviceConfigurations/dc1/groupAssignments", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "a1", "target": {"@odata.type": "#microsoft.graph.groupAssignmentTarget", "groupId": "G1"}}]}`)
		})

		c := newTestClient(t, mux, logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryDeviceConfiguration, "dc1")
		require.NoError(t, err)
		require.Empty(t, resolved)
	})

	t.Run("other categories ignore top-level targetGroupId", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1.0/deviceManagement/deviceCompliancePolicies/policy-1/assignments", func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"value": [{"id": "a1", "targetGroupId": "G1"}]}`)
		})

		c := newTestClient(t, mux, logr.Discard())

		resolved, err := c.GetPolicyAssignments(context.Background(), enums.CategoryCompliancePolicies, "policy-1")
		require.NoError(t, err)
		require.Empty(t, resolved)
	})
}
