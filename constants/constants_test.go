package constants

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intunehound/intunehound/enums"
)

func TestCategorySpecFor(t *testing.T) {
	t.Run("covers every category", func(t *testing.T) {
		for _, category := range enums.PolicyCategories() {
			spec, ok := CategorySpecFor(category)
			require.True(t, ok, "no spec for category %s", category)
			require.NotEmpty(t, spec.ResourcePath)
			require.NotEmpty(t, spec.AssignmentSegment)
			require.NotEmpty(t, spec.GroupIdField)
			require.NotEmpty(t, spec.DisplayNameField)
		}
	})

	t.Run("device configurations use the legacy group assignment shape", func(t *testing.T) {
		spec, ok := CategorySpecFor(enums.CategoryDeviceConfiguration)
		require.True(t, ok)
		require.Equal(t, SegmentGroupAssignments, spec.AssignmentSegment)
		require.Equal(t, GroupIdFieldTop, spec.GroupIdField)
	})

	t.Run("settings catalog policies carry their title in name", func(t *testing.T) {
		spec, ok := CategorySpecFor(enums.CategoryDeviceConfigurationSC)
		require.True(t, ok)
		require.Equal(t, SegmentAssignments, spec.AssignmentSegment)
		require.Equal(t, DisplayNameFieldName, spec.DisplayNameField)
	})

	t.Run("every other category reads the nested target", func(t *testing.T) {
		for _, category := range enums.PolicyCategories() {
			if category == enums.CategoryDeviceConfiguration {
				continue
			}
			spec, _ := CategorySpecFor(category)
			require.Equal(t, SegmentAssignments, spec.AssignmentSegment)
			require.Equal(t, GroupIdFieldTarget, spec.GroupIdField)
		}
	})

	t.Run("unknown categories are reported", func(t *testing.T) {
		_, ok := CategorySpecFor(enums.PolicyCategory("Bogus"))
		require.False(t, ok)
	})
}
