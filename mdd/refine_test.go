package mdd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmdd/mdd"
)

func TestRefineZeroMaxWidthIsNoop(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1})
	y := p.AddVariable([]int{0, 1})
	mdd.AllDifferentConstraint(p, []mdd.VariableIndex{x, y})
	require.NoError(t, p.SetVariableOrdering([]int{0, 1}))

	m := mdd.New(p)
	before := m.NumberNodes()
	require.NoError(t, m.Refine(context.Background(), p, mdd.RefineOptions{}))
	require.Equal(t, before, m.NumberNodes())
}

// TestRefineTightensWithoutLosingSolutions checks that refinement shrinks
// the relaxation's path count while every one of the 3! = 6 satisfying
// assignments stays admitted.
func TestRefineTightensWithoutLosingSolutions(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1, 2})
	y := p.AddVariable([]int{0, 1, 2})
	z := p.AddVariable([]int{0, 1, 2})
	mdd.AllDifferentConstraint(p, []mdd.VariableIndex{x, y, z})
	require.NoError(t, p.SetVariableOrdering([]int{0, 1, 2}))

	m := mdd.New(p)
	require.NoError(t, m.PropagateConstraints(context.Background(), p))
	before := m.CountSolutions()

	var traced int
	require.NoError(t, m.Refine(context.Background(), p, mdd.RefineOptions{
		MaxWidth: 3,
		Trace:    func(string, ...any) { traced++ },
	}))

	require.Less(t, m.CountSolutions(), before)
	require.GreaterOrEqual(t, m.CountSolutions(), 6)
}

func TestRefineRespectsCancellation(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1, 2})
	y := p.AddVariable([]int{0, 1, 2})
	mdd.AllDifferentConstraint(p, []mdd.VariableIndex{x, y})
	require.NoError(t, p.SetVariableOrdering([]int{0, 1}))

	m := mdd.New(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Refine(ctx, p, mdd.RefineOptions{MaxWidth: 4})
	require.ErrorIs(t, err, context.Canceled)
}
