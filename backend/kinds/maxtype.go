package kinds

import (
	"github.com/sable-lang/sable/sablerr"
)

// MaxType is the symmetric widening join: the single kind both operands can
// be treated as when two control-flow paths merge on one slot. It is a
// best-effort join over the widening tables below, not a true least upper
// bound; pairs with no rule are a hard UncomparableKinds failure, because
// well-typed intermediate code never merges them.
func (c *Ctx) MaxType(a, b TypeKind) (TypeKind, error) {
	// reflexivity covers value kinds and equal Reference/Array operands
	// only: an equal Boxed pair still degrades to the top reference, and
	// the concat marker never joins with itself
	if a == b && !IsBoxed(a) && a != Concat {
		return a, nil
	}
	// the bottom reference is absorbed by anything that has a rule at all
	if c.IsBottom(a) {
		return b, nil
	}
	if c.IsBottom(b) {
		return a, nil
	}

	switch a.(type) {
	case UnitKind, BoolKind:
		// Unit and Bool join with nothing but themselves (and bottom, above)
		return c.uncomparable(a, b)

	case ByteKind:
		switch b.(type) {
		case CharKind:
			// Byte is signed and Char is not, so neither strictly contains
			// the other: their join skips to Int in both directions
			return Int, nil
		case ShortKind, IntKind, LongKind, FloatKind, DoubleKind:
			return b, nil
		default:
			return c.uncomparable(a, b)
		}

	case ShortKind:
		switch b.(type) {
		case ByteKind:
			return Short, nil
		case CharKind:
			return Int, nil
		case IntKind, LongKind, FloatKind, DoubleKind:
			return b, nil
		default:
			return c.uncomparable(a, b)
		}

	case CharKind:
		switch b.(type) {
		case ByteKind, ShortKind:
			return Int, nil
		case IntKind, LongKind, FloatKind, DoubleKind:
			return b, nil
		default:
			return c.uncomparable(a, b)
		}

	case IntKind:
		switch b.(type) {
		case ByteKind, ShortKind, CharKind:
			return Int, nil
		case LongKind, FloatKind, DoubleKind:
			return b, nil
		default:
			return c.uncomparable(a, b)
		}

	case LongKind:
		switch {
		case IsIntegral(b):
			return Long, nil
		case IsReal(b):
			return Double, nil
		default:
			return c.uncomparable(a, b)
		}

	case FloatKind:
		switch {
		case b == Double:
			return Double, nil
		case IsNumeric(b):
			return Float, nil
		default:
			return c.uncomparable(a, b)
		}

	case DoubleKind:
		if IsNumeric(b) {
			return Double, nil
		}
		return c.uncomparable(a, b)

	case RefKind:
		// the cheap reference join; precise joins go through Lub
		switch b.(type) {
		case RefKind, ArrayKind, BoxedKind, ConcatKind:
			return c.TopRef(), nil
		default:
			return c.uncomparable(a, b)
		}

	case ArrayKind:
		// an equal-element array was already returned by the equality check
		switch b.(type) {
		case ArrayKind, RefKind, BoxedKind:
			return c.TopRef(), nil
		default:
			return c.uncomparable(a, b)
		}

	case BoxedKind:
		switch b.(type) {
		case RefKind, ArrayKind, BoxedKind:
			return c.TopRef(), nil
		default:
			return c.uncomparable(a, b)
		}

	case ConcatKind:
		if _, ok := b.(RefKind); ok {
			return c.TopRef(), nil
		}
		return c.uncomparable(a, b)

	default:
		return c.uncomparable(a, b)
	}
}

func (c *Ctx) uncomparable(a, b TypeKind) (TypeKind, error) {
	return nil, sablerr.New(sablerr.NewUncomparableKinds{First: a, Second: b})
}
