// Copyright © 2025 The whyerr authors

package runtimefault

import (
	"strings"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
)

// fileNotFound explains a missing-file fault. The message is expected to
// look like
//
//	[Errno 2] No such file or directory: 'data.txt'
//
// so the file name is the quoted token.
func fileNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		filename := quoted(rec.Message, 0)
		if filename == "" {
			return nil
		}
		return &fault.Cause{
			Cause: catalog.Render("file.not-found", map[string]string{
				"filename": filename,
			}),
		}
	}
}

// keyNotFound explains a missing-key fault. The message is either the bare
// key representation ('widget') or a sentence quoting it.
func keyNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		key := quoted(rec.Message, 0)
		if key == "" {
			key = strings.TrimSpace(rec.Message)
		}
		if key == "" {
			return nil
		}
		return &fault.Cause{
			Cause: catalog.Render("key.not-found", map[string]string{
				"key": key,
			}),
		}
	}
}

// moduleNotFound explains a module that could not be located at all, as in
//
//	No module named 'requets'
func moduleNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		module := quoted(rec.Message, 0)
		if module == "" {
			return nil
		}
		return &fault.Cause{
			Cause: catalog.Render("module.not-found", map[string]string{
				"module": module,
			}),
		}
	}
}
