package i18ntree

type buildOptions struct {
	strict bool
}

// BuildOption configures SetDeep.
type BuildOption func(*buildOptions)

// WithStrict makes SetDeep fail with a *TypeMismatchError instead of
// replacing an existing value whose kind differs from the one the path needs.
func WithStrict() BuildOption {
	return func(o *buildOptions) { o.strict = true }
}

// SetDeep assigns value at path inside root, creating intermediate objects
// and arrays as needed. The kind of each created container is chosen by the
// step that addresses into it: an index step makes an array, a property step
// an object.
//
// An existing child of the wrong kind is replaced by an empty container and
// its content is lost. Array writes past the end leave holes; an index above
// MaxIndex fails with a *IndexRangeError before anything is written.
func SetDeep(root *Node, path string, value any, opts ...BuildOption) error {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	steps, err := ParsePath(path)
	if err != nil {
		return err
	}
	for i, step := range steps {
		if step.Kind == IndexStep && step.Index > MaxIndex {
			return &IndexRangeError{Path: path, Step: FormatPath(steps[:i+1]), Index: step.Index}
		}
	}

	cur := root
	for i, step := range steps {
		if err := checkAddressable(cur, steps, i, path); err != nil {
			return err
		}

		if i == len(steps)-1 {
			assign(cur, step, NewLeaf(value))
			return nil
		}

		want := ObjectKind
		if steps[i+1].Kind == IndexStep {
			want = ArrayKind
		}

		child := lookupStep(cur, step)
		switch {
		case child == nil || (child.IsLeaf() && child.Value() == nil):
			child = newContainer(want)
			assign(cur, step, child)
		case child.Kind() != want:
			if o.strict {
				return &TypeMismatchError{
					Path: path,
					Step: FormatPath(steps[:i+1]),
					Want: want,
					Got:  child.Kind(),
				}
			}
			child = newContainer(want)
			assign(cur, step, child)
		}
		cur = child
	}
	return nil
}

// checkAddressable verifies that the current container accepts step i. Only
// the root can fail here: every container below it was created or replaced
// with the kind its step needs.
func checkAddressable(cur *Node, steps []Step, i int, path string) error {
	want := ObjectKind
	if steps[i].Kind == IndexStep {
		want = ArrayKind
	}
	if cur != nil && cur.Kind() == want {
		return nil
	}
	got := LeafKind
	if cur != nil {
		got = cur.Kind()
	}
	return &TypeMismatchError{Path: path, Step: FormatPath(steps[:i]), Want: want, Got: got}
}

func lookupStep(n *Node, s Step) *Node {
	if s.Kind == IndexStep {
		return n.Index(s.Index)
	}
	child, _ := n.Get(s.Name)
	return child
}

func assign(n *Node, s Step, child *Node) {
	if s.Kind == IndexStep {
		n.SetIndex(s.Index, child)
		return
	}
	n.Set(s.Name, child)
}
