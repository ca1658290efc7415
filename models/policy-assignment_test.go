package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intunehound/intunehound/enums"
)

func TestNewPolicySummary(t *testing.T) {
	t.Run("counts match the assigned groups", func(t *testing.T) {
		summary := NewPolicySummary("p1", "Baseline", "baseline settings", enums.CategoryCompliancePolicies, []ResolvedAssignment{
			{GroupId: "G1", GroupName: "Pilot Devices"},
			{GroupId: "G2", GroupName: "Quarantine", Excluded: true},
		})
		require.Equal(t, []string{"Pilot Devices", "Quarantine"}, summary.AssignedGroups)
		require.Equal(t, 2, summary.AssignmentCount)
	})

	t.Run("no assignments yields an empty list, not nil", func(t *testing.T) {
		summary := NewPolicySummary("p1", "Baseline", "", enums.CategoryCompliancePolicies, nil)
		require.NotNil(t, summary.AssignedGroups)
		require.Zero(t, summary.AssignmentCount)
	})
}
