// Copyright © 2025 The whyerr authors

// Package report assembles the layered explanation shown to the user:
// generic description of the fault category, likely-cause narrative, a
// suggestion when one exists, annotated source context, and the values of
// the names appearing in it.
package report

import (
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/runtimefault"
	"github.com/whyerr/whyerr/syntaxmsg"
)

// NewDefaultEngine returns an inference engine with every built-in handler
// and syntax analyzer registered. A nil catalogue selects the built-in
// English one. Options are forwarded to the engine.
func NewDefaultEngine(catalog *lang.Catalog, opts ...infer.Option) (*infer.Engine, error) {
	if catalog == nil {
		catalog = lang.Default()
	}
	registry := infer.NewRegistry()
	if err := runtimefault.RegisterAll(registry, catalog); err != nil {
		return nil, err
	}
	chain := syntaxmsg.Default(catalog)
	opts = append([]infer.Option{infer.WithCatalog(catalog)}, opts...)
	return infer.NewEngine(registry, chain, opts...)
}
