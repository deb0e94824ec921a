package mdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmdd/mdd"
)

func TestAddVariableDomain(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1, 2})

	assert.Equal(t, 1, p.NumberVariables())
	assert.Equal(t, []int{0, 1, 2}, p.Variable(x).Domain())
	assert.Equal(t, 3, p.Variable(x).DomainSize())
}

func TestAddVariablesSharedDomain(t *testing.T) {
	p := mdd.NewProblem()
	vars := p.AddVariables(4, []int{0, 1})

	require.Len(t, vars, 4)
	for _, v := range vars {
		assert.Equal(t, []int{0, 1}, p.Variable(v).Domain())
	}
}

func TestSetDomainResetsProbabilities(t *testing.T) {
	p := mdd.NewProblem()
	x := p.AddVariable([]int{0, 1, 2, 3})
	assert.InDelta(t, 0.25, p.Variable(x).Probability(0), 1e-9)

	p.Variable(x).SetDomain([]int{5})
	assert.Equal(t, 1, p.Variable(x).DomainSize())
	assert.InDelta(t, 1.0, p.Variable(x).Probability(0), 1e-9)
}

func TestSetVariableOrderingRejectsNonPermutation(t *testing.T) {
	p := mdd.NewProblem()
	p.AddVariables(3, []int{0, 1})

	err := p.SetVariableOrdering([]int{0, 0, 2})
	require.ErrorIs(t, err, mdd.ErrOrderingMismatch)

	err = p.SetVariableOrdering([]int{0, 1})
	require.ErrorIs(t, err, mdd.ErrOrderingMismatch)
}

func TestSetVariableOrderingAcceptsPermutation(t *testing.T) {
	p := mdd.NewProblem()
	vars := p.AddVariables(3, []int{0, 1})

	require.NoError(t, p.SetVariableOrdering([]int{2, 0, 1}))
	assert.Equal(t, 0, p.VariableLayer(vars[1]))
	assert.Equal(t, []int{2, 0, 1}, p.VariableOrdering())
}
