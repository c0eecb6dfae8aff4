package checker

import (
	"fmt"

	"github.com/lifei6671/i18ntree"
	"github.com/lifei6671/i18ntree/document"
)

// Options selects the documents to check and what to check them against.
type Options struct {
	// Format is the document format of the directory, "yaml" by default.
	Format string
	// Base is the locale whose document is the reference, "en" by default.
	Base string
	// Reference, when set, is a reference document used instead of Base.
	Reference string
}

type Result struct {
	Languages     []string
	MissingKeys   map[string][]string
	RedundantKeys map[string][]string
	// NeedsReorder marks languages whose document differs from its reordered
	// form (wrong key order or missing keys).
	NeedsReorder map[string]bool
	AllKeys      []string

	bundle *i18ntree.Bundle
}

// CheckLocales performs, for every locale document in dir:
//  1. key alignment check against the reference (missing / redundant)
//  2. key order check against the reference
func CheckLocales(dir string, opts Options) (*Result, error) {
	if opts.Format == "" {
		opts.Format = "yaml"
	}
	if opts.Base == "" {
		opts.Base = "en"
	}
	codec, err := document.Lookup(opts.Format)
	if err != nil {
		return nil, err
	}

	bundle := i18ntree.NewBundle(i18ntree.BundleConfig{DefaultLang: opts.Base})
	if err := bundle.LoadDir(dir, codec); err != nil {
		return nil, err
	}

	var ref *i18ntree.Node
	if opts.Reference != "" {
		if ref, err = document.ReadReference(opts.Reference); err != nil {
			return nil, err
		}
	} else {
		var ok bool
		if ref, ok = bundle.Tree(opts.Base); !ok {
			return nil, fmt.Errorf("%w: no %s document for base locale %q in %s",
				i18ntree.ErrMissingReferenceSource, opts.Format, opts.Base, dir)
		}
	}

	res := &Result{
		Languages:     bundle.Languages(),
		MissingKeys:   make(map[string][]string),
		RedundantKeys: make(map[string][]string),
		NeedsReorder:  make(map[string]bool),
		AllKeys:       ref.Flatten(),
		bundle:        bundle,
	}
	for _, lang := range res.Languages {
		tree, _ := bundle.Tree(lang)
		merged, report := i18ntree.Reorder(ref, tree, i18ntree.MissingBlank)
		if len(report.Missing) > 0 {
			res.MissingKeys[lang] = report.Missing
		}
		if len(report.Extra) > 0 {
			res.RedundantKeys[lang] = report.Extra
		}
		if !merged.Equal(tree) {
			res.NeedsReorder[lang] = true
		}
	}
	return res, nil
}

// Resolve returns, per language, the value of key through that language's
// fallback chain.
func (r *Result) Resolve(key string) map[string]string {
	out := make(map[string]string, len(r.Languages))
	for _, lang := range r.Languages {
		out[lang] = r.bundle.Locale(lang).T(key)
	}
	return out
}

// HasIssues reports whether any language has missing, redundant or
// misordered keys.
func (r *Result) HasIssues() bool {
	return len(r.MissingKeys) > 0 || len(r.RedundantKeys) > 0 || len(r.NeedsReorder) > 0
}
