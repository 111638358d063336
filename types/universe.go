package types

import (
	"fmt"
)

const (
	TopClassName    = "Any"
	BottomClassName = "Nothing"
	ArrayClassName  = "Array"
	StringClassName = "String"
)

// Universe owns every ClassSymbol of a compilation run. It is the concrete
// type oracle the backend lattice queries: identity lookups, nominal
// subtyping, and source-level least upper bounds all resolve against it.
type Universe struct {
	classes    map[string]*ClassSymbol
	primClass  map[Prim]*ClassSymbol
	classPrim  map[*ClassSymbol]Prim
	boxedClass map[Prim]*ClassSymbol
	boxedPrim  map[*ClassSymbol]Prim

	top    *ClassSymbol
	bottom *ClassSymbol
	array  *ClassSymbol
	str    *ClassSymbol
}

var allPrims = []Prim{
	PrimUnit, PrimBool, PrimByte, PrimShort, PrimChar,
	PrimInt, PrimLong, PrimFloat, PrimDouble,
}

func NewUniverse() *Universe {
	u := &Universe{
		classes:    make(map[string]*ClassSymbol),
		primClass:  make(map[Prim]*ClassSymbol),
		classPrim:  make(map[*ClassSymbol]Prim),
		boxedClass: make(map[Prim]*ClassSymbol),
		boxedPrim:  make(map[*ClassSymbol]Prim),
	}
	u.top = u.mustDefine(TopClassName, nil)
	u.bottom = u.mustDefine(BottomClassName, u.top)
	u.array = u.mustDefine(ArrayClassName, u.top)
	u.str = u.mustDefine(StringClassName, u.top)
	for _, p := range allPrims {
		// primitive classes live outside the reference hierarchy
		sym := &ClassSymbol{Name: p.String()}
		u.classes[sym.Name] = sym
		u.primClass[p] = sym
		u.classPrim[sym] = p

		boxed := u.mustDefine("Boxed"+p.String(), u.top)
		u.boxedClass[p] = boxed
		u.boxedPrim[boxed] = p
	}
	return u
}

func (u *Universe) TopClass() *ClassSymbol    { return u.top }
func (u *Universe) BottomClass() *ClassSymbol { return u.bottom }
func (u *Universe) ArrayClass() *ClassSymbol  { return u.array }
func (u *Universe) StringClass() *ClassSymbol { return u.str }

func (u *Universe) mustDefine(name string, super *ClassSymbol, ifaces ...*ClassSymbol) *ClassSymbol {
	sym, err := u.Define(name, super, ifaces...)
	if err != nil {
		panic("defining builtin class: " + err.Error())
	}
	return sym
}

// Define introduces a new class. A nil super defaults to the top class.
func (u *Universe) Define(name string, super *ClassSymbol, ifaces ...*ClassSymbol) (*ClassSymbol, error) {
	if name == "" {
		return nil, fmt.Errorf("class name must not be empty")
	}
	if _, taken := u.classes[name]; taken {
		return nil, fmt.Errorf("class '%s' is already defined", name)
	}
	if super == nil && name != TopClassName {
		super = u.top
	}
	sym := &ClassSymbol{Name: name, Super: super, Ifaces: ifaces}
	u.classes[name] = sym
	return sym, nil
}

// DefineInterface introduces a new interface. Interfaces extend other
// interfaces and implicitly sit below the top class.
func (u *Universe) DefineInterface(name string, ifaces ...*ClassSymbol) (*ClassSymbol, error) {
	sym, err := u.Define(name, u.top, ifaces...)
	if err != nil {
		return nil, err
	}
	sym.IsIface = true
	return sym, nil
}

func (u *Universe) ClassNamed(name string) (*ClassSymbol, bool) {
	sym, ok := u.classes[name]
	return sym, ok
}

// PrimitiveClass maps a primitive to its class symbol. The mapping is
// invertible through PrimOf.
func (u *Universe) PrimitiveClass(p Prim) *ClassSymbol { return u.primClass[p] }

func (u *Universe) PrimOf(c *ClassSymbol) (Prim, bool) {
	p, ok := u.classPrim[c]
	return p, ok
}

func (u *Universe) BoxedClass(p Prim) *ClassSymbol { return u.boxedClass[p] }

// BoxedPrimOf inverts BoxedClass.
func (u *Universe) BoxedPrimOf(c *ClassSymbol) (Prim, bool) {
	p, ok := u.boxedPrim[c]
	return p, ok
}

// SourceOf recovers the source-level type a class symbol denotes.
func (u *Universe) SourceOf(c *ClassSymbol) SourceType {
	if p, ok := u.classPrim[c]; ok {
		return &PrimType{P: p}
	}
	return &ClassType{Sym: c}
}
