package i18ntree

import (
	"errors"
	"fmt"
)

// Sentinel errors, checked with errors.Is. Builder and parser failures are
// row scoped and recovered by the projector; the rest abort a run.
var (
	ErrEmptyPath              = errors.New("empty key path")
	ErrTypeMismatch           = errors.New("container type mismatch")
	ErrIndexOutOfRange        = errors.New("array index out of range")
	ErrMissingReferenceSource = errors.New("reference source not found")
	ErrNoLocaleColumns        = errors.New("no locale columns")
	ErrNoRows                 = errors.New("no rows")
)

// TypeMismatchError is returned by SetDeep when a step cannot address the
// container found at its location.
type TypeMismatchError struct {
	// Path is the full key path being written.
	Path string
	// Step is the rendered path prefix where the mismatch occurred.
	Step string
	// Want and Got are the required and the found container kinds.
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	step := e.Step
	if step == "" {
		step = RootPath
	}
	return fmt.Sprintf("key %q: expected %s at %s, found %s", e.Path, e.Want, step, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// IndexRangeError is returned by SetDeep for an index step above MaxIndex.
type IndexRangeError struct {
	Path  string
	Step  string
	Index int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("key %q: index %d at %s exceeds %d", e.Path, e.Index, e.Step, MaxIndex)
}

func (e *IndexRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
