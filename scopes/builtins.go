// Copyright © 2025 The whyerr authors

package scopes

// builtinNames lists the builtin names of the host runtime that beginners
// actually encounter. The table is used both for typo suggestions and for
// identifying builtin references in displayed source.
var builtinNames = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "bytearray", "bytes",
	"callable", "chr", "classmethod", "compile", "complex", "delattr",
	"dict", "dir", "divmod", "enumerate", "eval", "exec", "filter",
	"float", "format", "frozenset", "getattr", "globals", "hasattr",
	"hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "locals", "map", "max", "min",
	"next", "object", "oct", "open", "ord", "pow", "print", "property",
	"range", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "type",
	"vars", "zip",
}

// builtinSet indexes builtinNames for membership tests.
var builtinSet = func() map[string]bool {
	m := make(map[string]bool, len(builtinNames))
	for _, n := range builtinNames {
		m[n] = true
	}
	return m
}()

// BuiltinNames returns the builtin name table. The returned slice is a
// copy; callers may reorder it freely.
func BuiltinNames() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

// IsBuiltin reports whether name is in the builtin table.
func IsBuiltin(name string) bool {
	return builtinSet[name]
}
