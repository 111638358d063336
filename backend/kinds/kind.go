// Package kinds is the type lattice of the bytecode backend: it classifies
// every type an operand can carry once the source type system has been
// lowered into the coarser vocabulary the target virtual machine verifies.
package kinds

import (
	"github.com/sable-lang/sable/types"
)

// TypeKind is a closed union over the kinds an operand can have. Variants
// are comparable value structs, so == is structural equality: two
// ArrayKind{Int} values compare equal, and two RefKinds compare equal iff
// they wrap the same class identity.
type TypeKind interface {
	String() string
	typeKind()
}

var (
	_ TypeKind = UnitKind{}
	_ TypeKind = BoolKind{}
	_ TypeKind = ByteKind{}
	_ TypeKind = ShortKind{}
	_ TypeKind = CharKind{}
	_ TypeKind = IntKind{}
	_ TypeKind = LongKind{}
	_ TypeKind = FloatKind{}
	_ TypeKind = DoubleKind{}
	_ TypeKind = RefKind{}
	_ TypeKind = ArrayKind{}
	_ TypeKind = BoxedKind{}
	_ TypeKind = ConcatKind{}
)

// UnitKind is the kind of expressions evaluated for effect only; it leaves
// nothing on the operand stack.
type UnitKind struct{}

func (UnitKind) String() string { return "Unit" }
func (UnitKind) typeKind()      {}

type BoolKind struct{}

func (BoolKind) String() string { return "Bool" }
func (BoolKind) typeKind()      {}

type ByteKind struct{}

func (ByteKind) String() string { return "Byte" }
func (ByteKind) typeKind()      {}

type ShortKind struct{}

func (ShortKind) String() string { return "Short" }
func (ShortKind) typeKind()      {}

type CharKind struct{}

func (CharKind) String() string { return "Char" }
func (CharKind) typeKind()      {}

type IntKind struct{}

func (IntKind) String() string { return "Int" }
func (IntKind) typeKind()      {}

type LongKind struct{}

func (LongKind) String() string { return "Long" }
func (LongKind) typeKind()      {}

type FloatKind struct{}

func (FloatKind) String() string { return "Float" }
func (FloatKind) typeKind()      {}

type DoubleKind struct{}

func (DoubleKind) String() string { return "Double" }
func (DoubleKind) typeKind()      {}

// RefKind is a class-typed reference. Build it through Ctx.Ref, which
// rejects the array class identity (arrays are structural, never nominal)
// and the absent class. A literal RefKind skips that validation; the field
// stays exported so a Ctx can mint its own distinguished references.
type RefKind struct {
	Class *types.ClassSymbol
}

func (k RefKind) String() string { return "Ref(" + k.Class.Name + ")" }
func (RefKind) typeKind()        {}

// ArrayKind is a reference to a homogeneous sequence of Elem values.
type ArrayKind struct {
	Elem TypeKind
}

func (k ArrayKind) String() string { return "Array(" + k.Elem.String() + ")" }
func (ArrayKind) typeKind()        {}

// BoxedKind is a reference-typed wrapper around a value kind.
type BoxedKind struct {
	Of TypeKind
}

func (k BoxedKind) String() string { return "Boxed(" + k.Of.String() + ")" }
func (BoxedKind) typeKind()        {}

// ConcatKind is the synthetic placeholder carried while a string
// concatenation is being built up. It is not a real runtime type.
type ConcatKind struct{}

func (ConcatKind) String() string { return "Concat" }
func (ConcatKind) typeKind()      {}

var (
	Unit   TypeKind = UnitKind{}
	Bool   TypeKind = BoolKind{}
	Byte   TypeKind = ByteKind{}
	Short  TypeKind = ShortKind{}
	Char   TypeKind = CharKind{}
	Int    TypeKind = IntKind{}
	Long   TypeKind = LongKind{}
	Float  TypeKind = FloatKind{}
	Double TypeKind = DoubleKind{}
	Concat TypeKind = ConcatKind{}
)

// ArrayOf derives the kind of an array holding elem values.
func ArrayOf(elem TypeKind) TypeKind { return ArrayKind{Elem: elem} }

// BoxedOf wraps a value kind in its reference box. Boxing anything else is
// meaningless and panics: the translation step never produces it.
func BoxedOf(of TypeKind) TypeKind {
	if !IsValue(of) {
		panic("boxed kinds can only wrap value kinds, got " + of.String())
	}
	return BoxedKind{Of: of}
}

func IsValue(k TypeKind) bool {
	switch k.(type) {
	case UnitKind, BoolKind, ByteKind, ShortKind, CharKind, IntKind, LongKind, FloatKind, DoubleKind:
		return true
	default:
		return false
	}
}

func IsRef(k TypeKind) bool {
	_, ok := k.(RefKind)
	return ok
}

func IsArray(k TypeKind) bool {
	_, ok := k.(ArrayKind)
	return ok
}

func IsRefOrArray(k TypeKind) bool { return IsRef(k) || IsArray(k) }

func IsBoxed(k TypeKind) bool {
	_, ok := k.(BoxedKind)
	return ok
}

func IsIntegral(k TypeKind) bool {
	switch k.(type) {
	case ByteKind, ShortKind, CharKind, IntKind, LongKind:
		return true
	default:
		return false
	}
}

func IsReal(k TypeKind) bool {
	switch k.(type) {
	case FloatKind, DoubleKind:
		return true
	default:
		return false
	}
}

func IsNumeric(k TypeKind) bool { return IsIntegral(k) || IsReal(k) }

// IsWide reports whether the kind occupies two operand-stack slots on the
// target machine. Only the 64-bit kinds do.
func IsWide(k TypeKind) bool {
	switch k.(type) {
	case LongKind, DoubleKind:
		return true
	default:
		return false
	}
}

// Slots is the number of operand-stack slots a value of this kind takes.
func Slots(k TypeKind) int {
	switch {
	case k == Unit:
		return 0
	case IsWide(k):
		return 2
	default:
		return 1
	}
}

// Dimensions is the array nesting depth: 0 for anything that is not an array.
func Dimensions(k TypeKind) int {
	if arr, ok := k.(ArrayKind); ok {
		return 1 + Dimensions(arr.Elem)
	}
	return 0
}
