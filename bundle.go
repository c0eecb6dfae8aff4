package i18ntree

import (
	"sort"
	"sync"
)

// BundleConfig configures locale fallback for a Bundle.
type BundleConfig struct {
	// DefaultLang is the last locale tried, "en" when empty.
	DefaultLang string

	// Fallbacks maps a locale to its full lookup chain, for example
	// "zh-CN": {"zh-CN", "zh", "en"}. Locales without an entry use
	// themselves followed by DefaultLang.
	Fallbacks map[string][]string
}

// Bundle holds one document tree per locale code. It is safe for
// concurrent use.
type Bundle struct {
	mu     sync.RWMutex
	trees  map[string]*Node
	config BundleConfig
}

// NewBundle creates an empty Bundle.
func NewBundle(cfg BundleConfig) *Bundle {
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	if cfg.Fallbacks == nil {
		cfg.Fallbacks = make(map[string][]string)
	}
	return &Bundle{
		trees:  make(map[string]*Node),
		config: cfg,
	}
}

// Register stores the tree of a locale, replacing any previous one.
func (b *Bundle) Register(lang string, tree *Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trees[lang] = tree
}

// Tree returns the tree registered for lang.
func (b *Bundle) Tree(lang string) (*Node, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.trees[lang]
	return t, ok
}

// Languages returns the registered locale codes, sorted.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	langs := make([]string, 0, len(b.trees))
	for l := range b.trees {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Locale returns a lookup view bound to the fallback chain of lang.
func (b *Bundle) Locale(lang string) *Locale {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var chain []string
	if fb, ok := b.config.Fallbacks[lang]; ok && len(fb) > 0 {
		chain = append(chain, fb...)
	} else {
		if lang != "" {
			chain = append(chain, lang)
		}
		if b.config.DefaultLang != lang {
			chain = append(chain, b.config.DefaultLang)
		}
	}
	return &Locale{bundle: b, langs: chain}
}

// Locale resolves keys through a chain of locales.
type Locale struct {
	bundle *Bundle
	langs  []string
}

// Lookup returns the first leaf found at key along the chain.
func (l *Locale) Lookup(key string) (*Node, string, bool) {
	if l.bundle == nil {
		return nil, "", false
	}
	l.bundle.mu.RLock()
	defer l.bundle.mu.RUnlock()

	for _, lang := range l.langs {
		if n := l.bundle.trees[lang].Lookup(key); n.IsLeaf() {
			return n, lang, true
		}
	}
	return nil, "", false
}

// T returns the leaf at key rendered as a string, or key itself when no
// locale in the chain has it.
func (l *Locale) T(key string) string {
	n, _, ok := l.Lookup(key)
	if !ok {
		return key
	}
	return cellString(n.Value())
}
