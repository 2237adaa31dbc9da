// Package openscad drives the OpenSCAD command line renderer.
package openscad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/cardforge/pkg/core"
)

// FormatValue renders a Go value as an OpenSCAD literal.
// Strings are quoted as-is: embedded quotes are not escaped, so labels must not contain them.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return `"` + val + `"`
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(val, 64)
	case float32:
		return formatFloat(float64(val), 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat keeps a decimal point on whole numbers so floats stay distinguishable from ints.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

// DefineArgs expands params into "-D name=value" argument pairs.
func DefineArgs(params core.Params) []string {
	args := make([]string, 0, 2*len(params))
	for _, p := range params {
		args = append(args, "-D", p.Name+"="+FormatValue(p.Value))
	}
	return args
}
