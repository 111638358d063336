package sablerr

import (
	"fmt"
)

type Unclassified struct {
	From  error
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}

// NewUncomparableKinds signals that no widening rule joins the two kinds.
// In well-typed intermediate code two such kinds never meet on the same
// merged slot, so reaching this is a compiler bug, not a user error.
type NewUncomparableKinds struct {
	First  fmt.Stringer
	Second fmt.Stringer
	stack  []byte
}

func (e NewUncomparableKinds) Error() string {
	return fmt.Sprintf("cannot compute the widened type of uncomparable kinds '%v' and '%v'", e.First, e.Second)
}
func (e NewUncomparableKinds) Code() ErrCode    { return UncomparableKinds }
func (e NewUncomparableKinds) getStack() []byte { return e.stack }
func (e NewUncomparableKinds) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}

// NewIncompatibleTypes signals that two kinds share no least upper bound,
// typically because one of them is not a reference or array kind.
type NewIncompatibleTypes struct {
	First  fmt.Stringer
	Second fmt.Stringer
	stack  []byte
}

func (e NewIncompatibleTypes) Error() string {
	return fmt.Sprintf("no least upper bound exists for incompatible kinds '%v' and '%v'", e.First, e.Second)
}
func (e NewIncompatibleTypes) Code() ErrCode    { return IncompatibleTypes }
func (e NewIncompatibleTypes) getStack() []byte { return e.stack }
func (e NewIncompatibleTypes) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}

// NewMalformedReference rejects reference kinds built over an identity the
// lattice must never wrap, such as the array class or no class at all.
type NewMalformedReference struct {
	Detail string
	stack  []byte
}

func (e NewMalformedReference) Error() string {
	return fmt.Sprintf("malformed reference kind: %s", e.Detail)
}
func (e NewMalformedReference) Code() ErrCode    { return MalformedReference }
func (e NewMalformedReference) getStack() []byte { return e.stack }
func (e NewMalformedReference) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}

type NewBadDescriptor struct {
	Descriptor string
	Reason     string
	stack      []byte
}

func (e NewBadDescriptor) Error() string {
	return fmt.Sprintf("bad kind descriptor %q: %s", e.Descriptor, e.Reason)
}
func (e NewBadDescriptor) Code() ErrCode    { return BadDescriptor }
func (e NewBadDescriptor) getStack() []byte { return e.stack }
func (e NewBadDescriptor) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}

type NewUndefinedClass struct {
	Name  string
	stack []byte
}

func (e NewUndefinedClass) Error() string {
	return fmt.Sprintf("class '%s' is not defined in this universe", e.Name)
}
func (e NewUndefinedClass) Code() ErrCode    { return UndefinedClass }
func (e NewUndefinedClass) getStack() []byte { return e.stack }
func (e NewUndefinedClass) withStack(stack []byte) SableError {
	e.stack = stack
	return e
}
