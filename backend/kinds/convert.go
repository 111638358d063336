package kinds

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sable-lang/sable/types"
)

// KindForPrim maps a source primitive to its kind. Invertible via PrimForKind.
func KindForPrim(p types.Prim) TypeKind {
	switch p {
	case types.PrimUnit:
		return Unit
	case types.PrimBool:
		return Bool
	case types.PrimByte:
		return Byte
	case types.PrimShort:
		return Short
	case types.PrimChar:
		return Char
	case types.PrimInt:
		return Int
	case types.PrimLong:
		return Long
	case types.PrimFloat:
		return Float
	case types.PrimDouble:
		return Double
	default:
		panic("no kind for invalid primitive")
	}
}

// PrimForKind recovers the source primitive of a value kind.
func PrimForKind(k TypeKind) (types.Prim, bool) {
	switch k.(type) {
	case UnitKind:
		return types.PrimUnit, true
	case BoolKind:
		return types.PrimBool, true
	case ByteKind:
		return types.PrimByte, true
	case ShortKind:
		return types.PrimShort, true
	case CharKind:
		return types.PrimChar, true
	case IntKind:
		return types.PrimInt, true
	case LongKind:
		return types.PrimLong, true
	case FloatKind:
		return types.PrimFloat, true
	case DoubleKind:
		return types.PrimDouble, true
	default:
		return 0, false
	}
}

// KindOf translates a source type into its kind. This is the boundary the
// translation step in the code generator goes through; the lattice itself
// only calls it to close the loop after an oracle lub.
func (c *Ctx) KindOf(t types.SourceType) (TypeKind, error) {
	switch t := t.(type) {
	case *types.PrimType:
		return KindForPrim(t.P), nil
	case *types.ClassType:
		if p, ok := c.oracle.PrimOf(t.Sym); ok {
			return KindForPrim(p), nil
		}
		if p, ok := c.oracle.BoxedPrimOf(t.Sym); ok {
			return BoxedKind{Of: KindForPrim(p)}, nil
		}
		return c.Ref(t.Sym)
	case *types.ArrayType:
		elem, err := c.KindOf(t.Elem)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "translating array element type")
		}
		return ArrayKind{Elem: elem}, nil
	case *types.IntersectionType:
		// an operand can only carry one class, so a compound collapses to
		// its dominant member
		dominant, err := c.dominantOf(t.Members)
		if err != nil {
			return nil, err
		}
		return c.KindOf(dominant)
	default:
		return nil, pkgerrors.Errorf("source type %s has no kind", t)
	}
}

func (c *Ctx) dominantOf(members []types.SourceType) (types.SourceType, error) {
	if dom, ok := c.oracle.(IntersectionDominator); ok {
		return dom.DominantMember(members)
	}
	if len(members) == 0 {
		return nil, pkgerrors.New("empty intersection type")
	}
	return members[0], nil
}

// SourceOfKind inverts KindOf for every kind that has a source-level
// counterpart. The concat marker has none.
func (c *Ctx) SourceOfKind(k TypeKind) (types.SourceType, error) {
	switch k := k.(type) {
	case RefKind:
		return c.oracle.SourceOf(k.Class), nil
	case ArrayKind:
		elem, err := c.SourceOfKind(k.Elem)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "recovering array element type")
		}
		return &types.ArrayType{Elem: elem}, nil
	case BoxedKind:
		p, ok := PrimForKind(k.Of)
		if !ok {
			return nil, pkgerrors.Errorf("boxed kind wraps non-value kind %s", k.Of)
		}
		return &types.ClassType{Sym: c.oracle.BoxedClass(p)}, nil
	case ConcatKind:
		return nil, pkgerrors.New("the concat marker is synthetic and has no source type")
	default:
		p, ok := PrimForKind(k)
		if !ok {
			return nil, pkgerrors.Errorf("kind %s has no source type", k)
		}
		return &types.PrimType{P: p}, nil
	}
}
