// Copyright © 2025 The whyerr authors

// Package infer orchestrates cause inference: a registry binds fault-kind
// tags to handlers, and an engine drives a record through the registry and,
// for syntax faults, through the message analyzer chain.
//
// Registries are populated during an explicit initialization phase and then
// frozen. A frozen registry rejects further registration and is safe for
// concurrent readers; nothing mutates it afterward.
package infer

import (
	"fmt"

	"github.com/whyerr/whyerr/fault"
)

// Handler infers a likely cause for one fault kind. Handlers read the
// record and return nil when they cannot say anything specific; they must
// never fabricate a cause.
type Handler func(rec *fault.Record) *fault.Cause

// Registry maps fault-kind tags to handlers. At most one handler per tag.
type Registry struct {
	handlers map[string]Handler
	frozen   bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds kind to handler. Registering a kind twice is rejected:
// silent last-wins clobbering has historically hidden initialization-order
// bugs, so duplicates fail fast instead.
func (r *Registry) Register(kind string, handler Handler) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen: cannot register %q", kind)
	}
	if kind == "" {
		return fmt.Errorf("cannot register empty fault kind")
	}
	if handler == nil {
		return fmt.Errorf("cannot register nil handler for %q", kind)
	}
	if _, exists := r.handlers[kind]; exists {
		return fmt.Errorf("duplicate handler registration for %q", kind)
	}
	r.handlers[kind] = handler
	return nil
}

// Freeze ends the registration phase. Freezing twice is harmless.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registration phase has ended.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup returns the handler bound to kind, if any.
func (r *Registry) Lookup(kind string) (Handler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// Kinds returns the registered fault-kind tags in unspecified order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	return kinds
}
