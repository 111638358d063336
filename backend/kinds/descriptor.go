package kinds

import (
	"strings"

	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
)

// ClassResolver turns a class name from a descriptor into its identity.
type ClassResolver func(name string) (*types.ClassSymbol, error)

// ParseDescriptor reads the one-line descriptor notation for kinds:
//
//	V Z B S C I J F D   the value kinds (Unit, Bool, Byte, Short, Char,
//	                    Int, Long, Float, Double)
//	Lname;              a class reference
//	[desc               an array of desc
//	#prim               the boxed form of a value kind
//	!                   the string-concat placeholder
//
// The notation is the virtual machine's own, which keeps dumps and tests
// readable next to its verifier output.
func (c *Ctx) ParseDescriptor(desc string, resolve ClassResolver) (TypeKind, error) {
	kind, rest, err := c.parseDescriptor(desc, desc, resolve)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, sablerr.New(sablerr.NewBadDescriptor{
			Descriptor: desc,
			Reason:     "unexpected trailing characters " + rest,
		})
	}
	return kind, nil
}

func (c *Ctx) parseDescriptor(whole, desc string, resolve ClassResolver) (TypeKind, string, error) {
	if desc == "" {
		return nil, "", sablerr.New(sablerr.NewBadDescriptor{Descriptor: whole, Reason: "descriptor is empty"})
	}
	rest := desc[1:]
	switch desc[0] {
	case 'V':
		return Unit, rest, nil
	case 'Z':
		return Bool, rest, nil
	case 'B':
		return Byte, rest, nil
	case 'S':
		return Short, rest, nil
	case 'C':
		return Char, rest, nil
	case 'I':
		return Int, rest, nil
	case 'J':
		return Long, rest, nil
	case 'F':
		return Float, rest, nil
	case 'D':
		return Double, rest, nil
	case '!':
		return Concat, rest, nil
	case '[':
		elem, rest, err := c.parseDescriptor(whole, rest, resolve)
		if err != nil {
			return nil, "", err
		}
		return ArrayKind{Elem: elem}, rest, nil
	case '#':
		of, rest, err := c.parseDescriptor(whole, rest, resolve)
		if err != nil {
			return nil, "", err
		}
		if !IsValue(of) {
			return nil, "", sablerr.New(sablerr.NewBadDescriptor{
				Descriptor: whole,
				Reason:     "'#' must wrap a value kind, got " + of.String(),
			})
		}
		return BoxedKind{Of: of}, rest, nil
	case 'L':
		end := strings.IndexByte(rest, ';')
		if end < 0 {
			return nil, "", sablerr.New(sablerr.NewBadDescriptor{
				Descriptor: whole,
				Reason:     "class reference is missing its closing ';'",
			})
		}
		name := rest[:end]
		cls, err := resolve(name)
		if err != nil {
			return nil, "", err
		}
		kind, err := c.Ref(cls)
		if err != nil {
			return nil, "", err
		}
		return kind, rest[end+1:], nil
	default:
		return nil, "", sablerr.New(sablerr.NewBadDescriptor{
			Descriptor: whole,
			Reason:     "unknown lead character " + string(desc[0]),
		})
	}
}

// Descriptor is the inverse of ParseDescriptor.
func Descriptor(k TypeKind) string {
	switch k := k.(type) {
	case UnitKind:
		return "V"
	case BoolKind:
		return "Z"
	case ByteKind:
		return "B"
	case ShortKind:
		return "S"
	case CharKind:
		return "C"
	case IntKind:
		return "I"
	case LongKind:
		return "J"
	case FloatKind:
		return "F"
	case DoubleKind:
		return "D"
	case ConcatKind:
		return "!"
	case ArrayKind:
		return "[" + Descriptor(k.Elem)
	case BoxedKind:
		return "#" + Descriptor(k.Of)
	case RefKind:
		return "L" + k.Class.Name + ";"
	default:
		panic("no descriptor for kind " + k.String())
	}
}
