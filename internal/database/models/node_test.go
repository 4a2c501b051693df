package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeKindHeight(t *testing.T) {
	testCases := []struct {
		kind   NodeKind
		height int
	}{
		{NodeKindCorporation, 0},
		{NodeKindBuilding, 1},
		{NodeKindProperty, 2},
		{NodeKindTenancyPeriod, 3},
		{NodeKindTenant, 4},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.height, tc.kind.Height())
			assert.True(t, tc.kind.IsValid())
		})
	}

	assert.Equal(t, -1, NodeKind("Garage").Height())
	assert.False(t, NodeKind("Garage").IsValid())
}

func TestNodeImplementations(t *testing.T) {
	nodes := []Node{
		Corporation{},
		Building{},
		Property{},
		TenancyPeriod{},
		Tenant{},
	}

	// Heights increase monotonically from Corporation down to Tenant
	for i, n := range nodes {
		assert.Equal(t, i, n.NodeHeight())
		assert.Equal(t, n.NodeKind().Height(), n.NodeHeight())
	}
}
