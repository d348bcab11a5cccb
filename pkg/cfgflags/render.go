// pkg/cfgflags/render.go
package cfgflags

import (
	"strings"

	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// CfgLines renders vars as conditional-compilation directives. Value
// kinds embed the value in the flag name and are always emitted, even
// for a literal "0", because the key's presence is itself significant.
// Flag kinds are emitted only when nonzero. Iteration follows the
// registry declaration order so output is stable across runs.
func CfgLines(vars map[string]string) []string {
	var lines []string
	for _, v := range sysconfig.Registry {
		val, ok := vars[v.Name]
		if !ok {
			continue
		}
		switch v.Kind {
		case sysconfig.KindValue:
			lines = append(lines, directive.CfgPair(directive.CfgKey, v.Name+"_"+val))
		case sysconfig.KindFlag:
			if val != "0" {
				lines = append(lines, directive.CfgPair(directive.CfgKey, v.Name))
			}
		}
	}
	return lines
}

// Propagation serializes vars as a comma-separated list of
// VAL_name=value and FLAG_name=value entries. The prefix preserves the
// kind information the cfg line format discards, so a downstream
// resolver can rebuild the same cfg lines without invoking any
// interpreter.
func Propagation(vars map[string]string) string {
	var parts []string
	for _, v := range sysconfig.Registry {
		val, ok := vars[v.Name]
		if !ok {
			continue
		}
		switch v.Kind {
		case sysconfig.KindValue:
			parts = append(parts, "VAL_"+v.Name+"="+val)
		case sysconfig.KindFlag:
			if val != "0" {
				parts = append(parts, "FLAG_"+v.Name+"="+val)
			}
		}
	}
	return strings.Join(parts, ",")
}
