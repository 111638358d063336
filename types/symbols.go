package types

import (
	"hash/fnv"
)

// ClassSymbol is the identity of a nominal class or interface. Two symbols
// denote the same class iff they are the same pointer within a Universe.
type ClassSymbol struct {
	Name    string
	Super   *ClassSymbol // nil for the top class and for primitive classes
	Ifaces  []*ClassSymbol
	IsIface bool
}

func (c *ClassSymbol) String() string { return c.Name }

func (c *ClassSymbol) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ClassSymbol"))
	_, _ = h.Write([]byte(c.Name))
	return h.Sum64()
}
