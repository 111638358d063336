package kinds

// Subtype decides the conformance relation <:< over kinds. It is a total
// predicate: unrelated kinds answer false, never an error.
//
// Among value kinds the only edges are Bool, Byte, Short and Char below Int
// and Long; the join of integrals with the floating kinds is maxType's
// business, not subtyping's.
func (c *Ctx) Subtype(a, b TypeKind) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case BoolKind, ByteKind, ShortKind, CharKind:
		return b == Int || b == Long
	case RefKind:
		switch b := b.(type) {
		case RefKind:
			return c.oracle.IsSubclass(a.Class, b.Class)
		case ArrayKind:
			// only the bottom class sits below every array
			return a.Class == c.oracle.BottomClass()
		default:
			return false
		}
	case ArrayKind:
		switch b := b.(type) {
		case ArrayKind:
			// arrays are covariant, matching the target machine's own
			// (unsound) rule
			return c.Subtype(a.Elem, b.Elem)
		case RefKind:
			// policy: every array conforms to the universal top reference
			return b.Class == c.oracle.TopClass()
		default:
			return false
		}
	case BoxedKind:
		// boxed kinds are invariant: only the identical box conforms, plus
		// the universal top reference
		ref, ok := b.(RefKind)
		return ok && ref.Class == c.oracle.TopClass()
	default:
		return false
	}
}
