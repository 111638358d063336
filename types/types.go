package types

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// Prim enumerates the primitive value types of the source language.
type Prim uint8

const (
	_ Prim = iota
	PrimUnit
	PrimBool
	PrimByte
	PrimShort
	PrimChar
	PrimInt
	PrimLong
	PrimFloat
	PrimDouble
)

func (p Prim) String() string {
	switch p {
	case PrimUnit:
		return "Unit"
	case PrimBool:
		return "Bool"
	case PrimByte:
		return "Byte"
	case PrimShort:
		return "Short"
	case PrimChar:
		return "Char"
	case PrimInt:
		return "Int"
	case PrimLong:
		return "Long"
	case PrimFloat:
		return "Float"
	case PrimDouble:
		return "Double"
	default:
		return "invalid"
	}
}

func (p Prim) IsNumeric() bool {
	switch p {
	case PrimByte, PrimShort, PrimChar, PrimInt, PrimLong, PrimFloat, PrimDouble:
		return true
	default:
		return false
	}
}

// rank orders the numeric primitives by how much they can hold.
// Byte and Char share no order between them; both sit below Int.
func (p Prim) rank() int {
	switch p {
	case PrimByte, PrimChar:
		return 1
	case PrimShort:
		return 2
	case PrimInt:
		return 3
	case PrimLong:
		return 4
	case PrimFloat:
		return 5
	case PrimDouble:
		return 6
	default:
		return 0
	}
}

// WidenPrim picks the numeric primitive both p and q widen into, when one exists.
func WidenPrim(p, q Prim) (Prim, bool) {
	if !p.IsNumeric() || !q.IsNumeric() {
		return 0, false
	}
	if p == q {
		return p, true
	}
	// Byte and Char disagree on the sign bit, so neither contains the other
	// and their join skips straight to Int. Same for Short against Char.
	if p.rank() <= 2 && q.rank() <= 2 {
		if p == PrimByte && q == PrimShort || p == PrimShort && q == PrimByte {
			return PrimShort, true
		}
		return PrimInt, true
	}
	if p.rank() > q.rank() {
		return p, true
	}
	return q, true
}

// SourceType is a type as the source language sees it, before the backend
// collapses it into a kind.
type SourceType interface {
	String() string
	Hash() uint64
	sourceType()
}

var (
	_ SourceType = (*ClassType)(nil)
	_ SourceType = (*PrimType)(nil)
	_ SourceType = (*ArrayType)(nil)
	_ SourceType = (*IntersectionType)(nil)
)

type ClassType struct {
	Sym *ClassSymbol
}

func (t *ClassType) String() string { return t.Sym.Name }
func (t *ClassType) sourceType()    {}

func (t *ClassType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ClassType"))
	_, _ = h.Write([]byte(t.Sym.Name))
	return h.Sum64()
}

type PrimType struct {
	P Prim
}

func (t *PrimType) String() string { return t.P.String() }
func (t *PrimType) sourceType()    {}

func (t *PrimType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("PrimType"))
	_, _ = h.Write([]byte{byte(t.P)})
	return h.Sum64()
}

type ArrayType struct {
	Elem SourceType
}

func (t *ArrayType) String() string { return "Array<" + t.Elem.String() + ">" }
func (t *ArrayType) sourceType()    {}

func (t *ArrayType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ArrayType"))
	arr := make([]byte, 0, 8)
	arr = binary.LittleEndian.AppendUint64(arr, t.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// IntersectionType is the compound result of a least upper bound whose
// operands share several unrelated minimal ancestors. Members holds at
// least two types and is kept in a deterministic order.
type IntersectionType struct {
	Members []SourceType
}

func (t *IntersectionType) String() string {
	parts := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " & ")
}
func (t *IntersectionType) sourceType() {}

func (t *IntersectionType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("IntersectionType"))
	arr := make([]byte, 0, 8*len(t.Members))
	for _, m := range t.Members {
		arr = binary.LittleEndian.AppendUint64(arr, m.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Equal is structural equality over source types.
func Equal(a, b SourceType) bool {
	switch at := a.(type) {
	case *ClassType:
		bt, ok := b.(*ClassType)
		return ok && at.Sym == bt.Sym
	case *PrimType:
		bt, ok := b.(*PrimType)
		return ok && at.P == bt.P
	case *ArrayType:
		bt, ok := b.(*ArrayType)
		return ok && Equal(at.Elem, bt.Elem)
	case *IntersectionType:
		bt, ok := b.(*IntersectionType)
		if !ok || len(at.Members) != len(bt.Members) {
			return false
		}
		for i := range at.Members {
			if !Equal(at.Members[i], bt.Members[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SourceHasher adapts SourceType hashing for hashed-set containers.
type SourceHasher struct{}

func (SourceHasher) Hash(t SourceType) uint32 {
	h := t.Hash()
	return uint32(h ^ h>>32)
}

func (SourceHasher) Equal(a, b SourceType) bool { return Equal(a, b) }
