package xform

import "strings"

// TransformArrayCreateDims lowers `new T[e][f]...` (spec §4.5) given
// the element type name and the dimension expressions in declaration
// order.
func TransformArrayCreateDims(typeName string, dims []string) string {
	return "$p.createJavaArray('" + typeName + "', [" + strings.Join(dims, ", ") + "])"
}
