package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyVisited = immutable.NewSet[string](nil)

// IsSubclass reports whether sub is nominally a subtype of sup: the same
// class, the bottom class, or a class reaching sup through its super chain
// or any implemented interface.
func (u *Universe) IsSubclass(sub, sup *ClassSymbol) bool {
	if sub == nil || sup == nil {
		return false
	}
	return u.isSubclass(sub, sup, emptyVisited)
}

func (u *Universe) isSubclass(sub, sup *ClassSymbol, visited immutable.Set[string]) bool {
	if sub == sup {
		return true
	}
	if sub == u.bottom {
		return true
	}
	if _, isPrim := u.classPrim[sub]; !isPrim && sup == u.top {
		return true
	}
	// interface diamonds revisit symbols, so guard with the walked names
	if visited.Has(sub.Name) {
		return false
	}
	visited = visited.Add(sub.Name)
	if sub.Super != nil && u.isSubclass(sub.Super, sup, visited) {
		return true
	}
	for _, iface := range sub.Ifaces {
		if u.isSubclass(iface, sup, visited) {
			return true
		}
	}
	return false
}
