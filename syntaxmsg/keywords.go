// Copyright © 2025 The whyerr authors

package syntaxmsg

// constants are the reserved words that name fixed values. Assigning to one
// gets "is a constant" wording rather than "is a keyword" wording.
var constants = map[string]bool{
	"None":      true,
	"True":      true,
	"False":     true,
	"__debug__": true,
}

// keywords lists the host runtime's reserved words (CPython 3.8 kwlist).
var keywords = map[string]bool{
	"False":    true,
	"None":     true,
	"True":     true,
	"and":      true,
	"as":       true,
	"assert":   true,
	"async":    true,
	"await":    true,
	"break":    true,
	"class":    true,
	"continue": true,
	"def":      true,
	"del":      true,
	"elif":     true,
	"else":     true,
	"except":   true,
	"finally":  true,
	"for":      true,
	"from":     true,
	"global":   true,
	"if":       true,
	"import":   true,
	"in":       true,
	"is":       true,
	"lambda":   true,
	"nonlocal": true,
	"not":      true,
	"or":       true,
	"pass":     true,
	"raise":    true,
	"return":   true,
	"try":      true,
	"while":    true,
	"with":     true,
	"yield":    true,
}

// isReserved reports whether word is a keyword or the __debug__ constant.
func isReserved(word string) bool {
	return keywords[word] || word == "__debug__"
}
