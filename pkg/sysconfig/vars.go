// pkg/sysconfig/vars.go
package sysconfig

// Kind classifies a build-config var. Flags are boolean-like: the
// interpreter reports "0" or a nonzero value. Values carry arbitrary
// text and render with the value embedded in the flag name, so a value
// of "0" is still significant.
type Kind int

const (
	// KindFlag is a boolean-like var, reported as "0" or nonzero.
	KindFlag Kind = iota
	// KindValue is a var carrying an arbitrary string value.
	KindValue
)

// Var is a single interpreter build-config variable we interrogate.
type Var struct {
	Name string
	Kind Kind
}

// Registry lists every build-config var, in the order the extraction
// script prints them. All rendering follows this order so output is
// stable across runs. See Misc/SpecialBuilds.txt in the CPython source
// for what the flags mean.
var Registry = []Var{
	{"Py_USING_UNICODE", KindFlag},
	{"Py_UNICODE_WIDE", KindFlag},
	{"WITH_THREAD", KindFlag},
	{"Py_DEBUG", KindFlag},
	{"Py_REF_DEBUG", KindFlag},
	{"Py_TRACE_REFS", KindFlag},
	{"COUNT_ALLOCS", KindFlag},

	// Not present on python 3.3+, which is always wide. Kept for older
	// runtimes where the unicode width matters.
	{"Py_UNICODE_SIZE", KindValue},
}

// KindOf returns the kind of a registered var name.
func KindOf(name string) (Kind, bool) {
	for _, v := range Registry {
		if v.Name == name {
			return v.Kind, true
		}
	}
	return 0, false
}
