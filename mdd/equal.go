package mdd

// Equal shrinks variable's domain to the singleton {value}. It is not a
// Constraint: it takes effect immediately, before the diagram is built,
// the same way the original prototype's clue-setting helper does —
// there is nothing to propagate later because the domain itself already
// reflects the clue.
func Equal(problem *Problem, variable VariableIndex, value int) {
	problem.Variable(variable).SetDomain([]int{value})
}
