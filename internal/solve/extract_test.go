package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSplitsFrontierAndExterior(t *testing.T) {
	// The numbers reach columns 0 and 2; the last column touches no
	// revealed cell and stays exterior.
	b := parseGrid(3,
		"#1##",
		"#1##",
		"#1##",
	)
	p, err := extract(b)
	require.NoError(t, err)

	assert.Len(t, p.cons, 3)
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, p.frontier)
	assert.Equal(t, []int{3, 7, 11}, p.exterior)
	for _, c := range p.cons {
		assert.Equal(t, 1, c.Required)
	}
	// The left-middle cell is seen by all three numbers.
	assert.Len(t, p.byCell[4], 3)
}

func TestExtractSubtractsFlags(t *testing.T) {
	b := parseGrid(1,
		"*#",
		"2#",
	)
	p, err := extract(b)
	require.NoError(t, err)
	require.Len(t, p.cons, 1)
	assert.Equal(t, 1, p.cons[0].Required)
	assert.ElementsMatch(t, []int{1, 3}, p.cons[0].Unknowns)
}

func TestExtractDetectsImpossibleConstraint(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too many mines", []string{"3", "#", "#"}},
		{"negative requirement", []string{"*#", "0#"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := extract(parseGrid(3, test.rows...))
			var contradiction ContradictionError
			require.ErrorAs(t, err, &contradiction)
			assert.GreaterOrEqual(t, contradiction.Cell, 0)
		})
	}
}

func TestSplitComponents(t *testing.T) {
	// Two independent clusters separated by revealed space.
	b := parseGrid(2,
		"#10001#",
		"#10001#",
	)
	p, err := extract(b)
	require.NoError(t, err)
	comps := split(p)
	require.Len(t, comps, 2)
	for _, comp := range comps {
		assert.Len(t, comp.cells, 2)
		assert.Len(t, comp.cons, 2)
	}
}

func TestSplitMergesSharedCells(t *testing.T) {
	// Both numbers see the center hidden cell, so everything is one
	// component.
	b := parseGrid(2,
		"#1#1#",
	)
	p, err := extract(b)
	require.NoError(t, err)
	comps := split(p)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].cells, 3)
	assert.Len(t, comps[0].cons, 2)
}
