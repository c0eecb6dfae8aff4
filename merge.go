package i18ntree

import (
	"fmt"
	"strings"
)

// MissingPolicy decides the leaf values filled in for reference paths the
// target lacks.
type MissingPolicy uint8

const (
	// MissingBlank fills every missing leaf with "".
	MissingBlank MissingPolicy = iota
	// MissingNull fills every missing leaf with null.
	MissingNull
	// MissingRef copies the reference leaf.
	MissingRef
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingBlank:
		return "blank"
	case MissingNull:
		return "null"
	case MissingRef:
		return "ref"
	default:
		return fmt.Sprintf("MissingPolicy(%d)", p)
	}
}

// ParseMissingPolicy accepts "blank", "null", "none" and "ref".
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blank":
		return MissingBlank, nil
	case "null", "none":
		return MissingNull, nil
	case "ref":
		return MissingRef, nil
	}
	return 0, fmt.Errorf("unknown missing policy %q (want blank, null or ref)", s)
}

// Set implements pflag.Value.
func (p *MissingPolicy) Set(s string) error {
	v, err := ParseMissingPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *MissingPolicy) Type() string { return "policy" }

// UnmarshalText lets environment configuration name a policy.
func (p *MissingPolicy) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Report lists the paths filled from the reference and the paths only the
// target has.
type Report struct {
	Missing []string
	Extra   []string
}

// Empty reports whether the merge found no drift.
func (r *Report) Empty() bool {
	return r == nil || len(r.Missing) == 0 && len(r.Extra) == 0
}

// Reorder aligns target with the reference shape and returns a new tree.
// Neither input is modified.
//
// Reference keys come first, in reference order, keeping the target value
// when the target has one. Keys only the target has follow in target order
// and are reported as extra. Paths only the reference has are filled per
// policy and reported as missing. A target leaf is never overwritten.
func Reorder(ref, target *Node, policy MissingPolicy) (*Node, *Report) {
	r := &merger{policy: policy, report: &Report{}}
	return r.reorder(ref, target, ""), r.report
}

type merger struct {
	policy MissingPolicy
	report *Report
}

func (m *merger) reorder(ref, target *Node, path string) *Node {
	switch {
	case ref.IsArray():
		return m.reorderArray(ref, target, path)
	case ref.IsObject():
		return m.reorderObject(ref, target, path)
	}

	if target == nil {
		if path == "" {
			path = RootPath
		}
		m.report.Missing = append(m.report.Missing, path)
		return m.fill(ref)
	}
	return target.Clone()
}

func (m *merger) reorderArray(ref, target *Node, path string) *Node {
	if !target.IsArray() {
		target = NewArray()
	}

	out := NewArray()
	size := max(ref.Len(), target.Len())
	for i := 0; i < size; i++ {
		r, t := ref.Index(i), target.Index(i)
		p := JoinIndex(path, i)
		switch {
		case r == nil && t == nil:
			out.SetIndex(i, nil)
		case r == nil:
			m.report.Extra = append(m.report.Extra, p)
			out.SetIndex(i, t.Clone())
		case t == nil:
			m.report.Missing = append(m.report.Missing, p)
			out.SetIndex(i, m.fill(r))
		default:
			out.SetIndex(i, m.reorder(r, t, p))
		}
	}
	return out
}

func (m *merger) reorderObject(ref, target *Node, path string) *Node {
	if !target.IsObject() {
		target = NewObject()
	}

	out := NewObject()
	for _, k := range ref.keys {
		r := ref.fields[k]
		p := JoinKey(path, k)
		t, ok := target.fields[k]
		if !ok {
			m.report.Missing = append(m.report.Missing, p)
			out.Set(k, m.fill(r))
			continue
		}
		out.Set(k, m.reorder(r, t, p))
	}
	for _, k := range target.keys {
		if ref.Has(k) {
			continue
		}
		m.report.Extra = append(m.report.Extra, JoinKey(path, k))
		out.Set(k, target.fields[k].Clone())
	}
	return out
}

// fill clones a reference subtree, replacing every leaf per policy.
func (m *merger) fill(ref *Node) *Node {
	if ref == nil {
		return nil
	}
	switch ref.kind {
	case ObjectKind:
		out := NewObject()
		for _, k := range ref.keys {
			out.Set(k, m.fill(ref.fields[k]))
		}
		return out
	case ArrayKind:
		out := NewArray()
		for i, item := range ref.items {
			out.SetIndex(i, m.fill(item))
		}
		return out
	}

	switch m.policy {
	case MissingNull:
		return NewLeaf(nil)
	case MissingRef:
		return NewLeaf(ref.value)
	default:
		return NewLeaf("")
	}
}
