package mdd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmdd/mdd"
)

func TestNotEqualsPrunesSharedSingleton(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0})
	y := p.AddVariable([]int{0, 1})
	mdd.NotEqualsConstraint(p, x, y)
	require.NoError(t, p.SetVariableOrdering([]int{0, 1}))

	m := mdd.New(p)
	require.NoError(t, m.PropagateConstraints(context.Background(), p))

	require.Equal(t, []int{1}, m.NodeChildValues(m.Layer(1).NodeAt(0)))
	require.Equal(t, 1, m.CountSolutions())
}

func TestNotEqualsNoPruningOnDisjointDomains(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1})
	y := p.AddVariable([]int{2, 3})
	mdd.NotEqualsConstraint(p, x, y)
	require.NoError(t, p.SetVariableOrdering([]int{0, 1}))

	m := mdd.New(p)
	require.NoError(t, m.PropagateConstraints(context.Background(), p))

	require.Equal(t, 4, m.NumberEdges())
	require.Equal(t, 4, m.CountSolutions())
}

func TestNotEqualsHonoursReverseOrdering(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1})
	y := p.AddVariable([]int{0})
	mdd.NotEqualsConstraint(p, x, y)
	require.NoError(t, p.SetVariableOrdering([]int{1, 0}))

	m := mdd.New(p)
	require.NoError(t, m.PropagateConstraints(context.Background(), p))

	require.Equal(t, []int{1}, m.NodeChildValues(m.Layer(1).NodeAt(0)))
}
