package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphParams(t *testing.T) {
	t.Run("empty params produce an empty map", func(t *testing.T) {
		require.Empty(t, GraphParams{}.AsMap())
		require.False(t, GraphParams{}.NeedsEventualConsistencyHeaderFlag())
	})

	t.Run("set params are rendered as odata options", func(t *testing.T) {
		params := GraphParams{
			Filter: "securityEnabled eq true",
			Select: []string{"id", "displayName"},
			Top:    999,
		}
		require.Equal(t, map[string]string{
			"$filter": "securityEnabled eq true",
			"$select": "id,displayName",
			"$top":    "999",
		}, params.AsMap())
	})

	t.Run("advanced queries require the consistency header", func(t *testing.T) {
		require.True(t, GraphParams{Count: true}.NeedsEventualConsistencyHeaderFlag())
		require.True(t, GraphParams{Search: "\"displayName:pilot\""}.NeedsEventualConsistencyHeaderFlag())
		require.True(t, GraphParams{Filter: "members/$count gt 0"}.NeedsEventualConsistencyHeaderFlag())
	})
}
