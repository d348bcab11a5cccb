// pkg/directive/directive.go

// Package directive renders the namespaced output lines the build
// orchestrator consumes. Every line starts with the fixed prefix so the
// orchestrator can separate directives from unrelated stdout noise.
package directive

import "fmt"

// Prefix namespaces every directive line.
const Prefix = "pyconfig:"

// CfgKey is the conditional-compilation namespace for interpreter
// build-config flags, mirroring an #ifdef of the same name in C.
const CfgKey = "py_sys_config"

// LinkLib emits a dynamic-link directive for the named library.
func LinkLib(name string) string {
	return fmt.Sprintf("%slink-lib=%s", Prefix, name)
}

// LinkLibStatic emits a static-link directive for the named library.
func LinkLibStatic(name string) string {
	return fmt.Sprintf("%slink-lib=static=%s", Prefix, name)
}

// LinkLibNamed emits a link directive binding the import alias to the
// decorated library name, e.g. pythonXY:python39.
func LinkLibNamed(alias, name string) string {
	return fmt.Sprintf("%slink-lib=%s:%s", Prefix, alias, name)
}

// LinkLibStaticNoBundle emits a static-link directive that bundles no
// artifact; the downstream consumer supplies the library at its own
// link step.
func LinkLibStaticNoBundle(alias string) string {
	return fmt.Sprintf("%slink-lib=static-nobundle=%s", Prefix, alias)
}

// LinkSearch emits a native library search-path directive.
func LinkSearch(dir string) string {
	return fmt.Sprintf("%slink-search=native=%s", Prefix, dir)
}

// Cfg emits a bare conditional-compilation flag, e.g. Py_3_9.
func Cfg(name string) string {
	return fmt.Sprintf("%scfg=%s", Prefix, name)
}

// CfgPair emits a keyed conditional-compilation flag, e.g.
// py_sys_config="Py_DEBUG".
func CfgPair(key, value string) string {
	return fmt.Sprintf("%scfg=%s=%q", Prefix, key, value)
}

// Flags publishes the serialized flag-propagation string for downstream
// build steps that cannot invoke the interpreter themselves.
func Flags(serialized string) string {
	return fmt.Sprintf("%spython-flags=%s", Prefix, serialized)
}

// Interpreter publishes the resolved interpreter path.
func Interpreter(path string) string {
	return fmt.Sprintf("%spython-interpreter=%s", Prefix, path)
}
