// Command gen emits the per-target conversion matrix for the asprim
// package (as_matrix.go). The matrix is fifteen near-identical type
// switches, one per target variant; generating them keeps the table
// mechanically uniform and easy to verify by inspection.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
)

const filePerm = 0o644

type class int

const (
	signedClass class = iota
	unsignedClass
	floatClass
	int128Class
	uint128Class
)

type variant struct {
	name   string // suffix of the As function: Int8, Uint128, ...
	goType string // concrete Go type: int8, Uint128, ...
	class  class
}

var variants = []variant{
	{"Int", "int", signedClass},
	{"Int8", "int8", signedClass},
	{"Int16", "int16", signedClass},
	{"Int32", "int32", signedClass},
	{"Int64", "int64", signedClass},
	{"Int128", "Int128", int128Class},
	{"Uint", "uint", unsignedClass},
	{"Uint8", "uint8", unsignedClass},
	{"Uint16", "uint16", unsignedClass},
	{"Uint32", "uint32", unsignedClass},
	{"Uint64", "uint64", unsignedClass},
	{"Uint128", "Uint128", uint128Class},
	{"Uintptr", "uintptr", unsignedClass},
	{"Float32", "float32", floatClass},
	{"Float64", "float64", floatClass},
}

func main() {
	output := flag.String("output", "as_matrix.go", "output file name")
	flag.Parse()

	err := os.WriteFile(*output, generate(), filePerm)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen:", err)
		os.Exit(1)
	}
}

func generate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`// Code generated by "go run ./internal/gen -output as_matrix.go"; DO NOT EDIT.

package asprim
`)

	for _, target := range variants {
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("// As%s converts a value of any supported variant to %s.\n", target.name, target.goType))
		buf.WriteString(fmt.Sprintf("func As%s[S Numeric](v S) %s {\n", target.name, target.goType))
		buf.WriteString("\tswitch x := any(v).(type) {\n")

		for _, source := range variants {
			buf.WriteString(fmt.Sprintf("\tcase %s:\n", source.goType))
			buf.WriteString(fmt.Sprintf("\t\treturn %s\n", conversion(target, source)))
		}

		buf.WriteString("\t}\n")
		buf.WriteString("\tpanic(\"unreachable variant\")\n")
		buf.WriteString("}\n")
	}

	buf.WriteString(`
// As converts a value of any supported variant to the variant T,
// forwarding to the matching concrete conversion above.
func As[T Numeric, S Numeric](v S) T {
	var t T
	switch any(t).(type) {
`)

	for _, target := range variants {
		buf.WriteString(fmt.Sprintf("\tcase %s:\n", target.goType))
		buf.WriteString(fmt.Sprintf("\t\treturn any(As%s(v)).(T)\n", target.name))
	}

	buf.WriteString("\t}\n")
	buf.WriteString("\tpanic(\"unreachable variant\")\n")
	buf.WriteString("}\n")

	return buf.Bytes()
}

// conversion returns the expression casting x (a value of the source
// variant) to the target variant.
func conversion(target, source variant) string {
	switch target.class {
	case signedClass, unsignedClass:
		switch source.class {
		case floatClass:
			return fmt.Sprintf("floatTo%s(float64(x))", target.name)
		case int128Class, uint128Class:
			return fmt.Sprintf("%s(x.Lo)", target.goType)
		default:
			return fmt.Sprintf("%s(x)", target.goType)
		}

	case floatClass:
		switch source.class {
		case int128Class, uint128Class:
			return fmt.Sprintf("x.%s()", target.name)
		default:
			return fmt.Sprintf("%s(x)", target.goType)
		}

	case uint128Class:
		switch source.class {
		case signedClass:
			return "Uint128FromInt64(int64(x))"
		case unsignedClass:
			return "Uint128From64(uint64(x))"
		case floatClass:
			return "Uint128FromFloat64(float64(x))"
		case int128Class:
			return "x.Uint128()"
		default:
			return "x"
		}

	case int128Class:
		switch source.class {
		case signedClass:
			return "Int128From64(int64(x))"
		case unsignedClass:
			return "Int128FromUint64(uint64(x))"
		case floatClass:
			return "Int128FromFloat64(float64(x))"
		case uint128Class:
			return "x.Int128()"
		default:
			return "x"
		}
	}

	panic("unreachable class")
}
