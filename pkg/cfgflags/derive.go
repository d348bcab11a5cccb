// pkg/cfgflags/derive.go

// Package cfgflags post-processes the extracted build-config map and
// renders it as conditional-compilation directives and as a serialized
// propagation string for downstream build steps.
package cfgflags

// rule is a one-directional implication between two flag vars.
type rule struct {
	antecedent string
	consequent string
}

// implications are applied exactly once, in order. This is a single
// ordered pass, not a fixpoint computation: Py_DEBUG forces
// Py_TRACE_REFS, which then forces Py_REF_DEBUG only because the second
// rule runs after the first.
var implications = []rule{
	{"Py_DEBUG", "Py_TRACE_REFS"},
	{"Py_TRACE_REFS", "Py_REF_DEBUG"},
}

// Apply mutates vars in place, forcing each consequent to "1" when its
// antecedent is present and nonzero. Running it a second time changes
// nothing.
func Apply(vars map[string]string) {
	for _, r := range implications {
		if isSet(vars, r.antecedent) {
			vars[r.consequent] = "1"
		}
	}
}

// isSet reports whether the var is present with a nonzero value.
func isSet(vars map[string]string, key string) bool {
	v, ok := vars[key]
	return ok && v != "0"
}
