// Copyright © 2025 The whyerr authors

package fault

// Scope identifies one of the three scope tiers visible from a frame.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeGlobal
	ScopeNonlocal
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	case ScopeNonlocal:
		return "nonlocal"
	default:
		return "unknown"
	}
}

// Binding describes a value bound to a name at fault time.
type Binding struct {
	// Repr is a printable representation of the bound value.
	Repr string

	// Len is the element count for collection values, -1 otherwise.
	Len int
}

// Frame is a narrow read-only capability over the live execution context at
// fault time. It deliberately hides any particular execution engine's frame
// representation; a test double backed by plain maps satisfies it.
type Frame interface {
	// Lookup reports the binding for name in the given scope tier.
	Lookup(name string, scope Scope) (Binding, bool)

	// Names enumerates the names bound in the given scope tier. The
	// order is unspecified; callers needing determinism must sort.
	Names(scope Scope) []string

	// Annotation reports a declared type hint for name in the given
	// scope tier, if one exists.
	Annotation(name string, scope Scope) (string, bool)
}
