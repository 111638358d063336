package types

import (
	"iter"
	"strings"

	set "github.com/hashicorp/go-set/v3"
	pkgerrors "github.com/pkg/errors"
	"github.com/sable-lang/sable/internal/log"
	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/util"
	"github.com/sable-lang/sable/util/hset"
	"slices"
)

var logger = log.DefaultLogger.With("section", "types")

// LeastUpperBound computes the most precise common supertype of two source
// types. When several unrelated minimal ancestors remain, the result is an
// IntersectionType over all of them, in a deterministic member order.
func (u *Universe) LeastUpperBound(a, b SourceType) (SourceType, error) {
	if Equal(a, b) {
		return a, nil
	}
	if u.isBottomType(a) {
		return b, nil
	}
	if u.isBottomType(b) {
		return a, nil
	}
	if u.isTopType(a) || u.isTopType(b) {
		return &ClassType{Sym: u.top}, nil
	}

	ap, aIsPrim := a.(*PrimType)
	bp, bIsPrim := b.(*PrimType)
	switch {
	case aIsPrim && bIsPrim:
		if widened, ok := WidenPrim(ap.P, bp.P); ok {
			return &PrimType{P: widened}, nil
		}
		return nil, sablerr.New(sablerr.NewIncompatibleTypes{First: a, Second: b})
	case aIsPrim || bIsPrim:
		// a primitive never shares an ancestor with a reference type
		return nil, sablerr.New(sablerr.NewIncompatibleTypes{First: a, Second: b})
	}

	if aArr, ok := a.(*ArrayType); ok {
		if bArr, ok := b.(*ArrayType); ok {
			return u.lubArrays(aArr, bArr)
		}
	}

	result, err := u.lubAncestors(a, b)
	if err != nil {
		return nil, err
	}
	logger.Debug("computed source-level lub",
		"lhs", a.String(), "rhs", b.String(), "lub", result.String())
	return result, nil
}

func (u *Universe) isBottomType(t SourceType) bool {
	ct, ok := t.(*ClassType)
	return ok && ct.Sym == u.bottom
}

func (u *Universe) isTopType(t SourceType) bool {
	ct, ok := t.(*ClassType)
	return ok && ct.Sym == u.top
}

func (u *Universe) lubArrays(a, b *ArrayType) (SourceType, error) {
	switch a.Elem.(type) {
	case *PrimType:
		// arrays of distinct primitives only share the root; equal arrays
		// were already handled by the caller
		return &ClassType{Sym: u.top}, nil
	}
	switch b.Elem.(type) {
	case *PrimType:
		return &ClassType{Sym: u.top}, nil
	}
	elemLub, err := u.LeastUpperBound(a.Elem, b.Elem)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "computing the element lub of two array types")
	}
	return &ArrayType{Elem: elemLub}, nil
}

// lubAncestors joins two reference-ish types through their common nominal
// ancestors, keeping only the minimal ones.
func (u *Universe) lubAncestors(a, b SourceType) (SourceType, error) {
	ancA := u.ancestorsOfSource(a)
	ancB := u.ancestorsOfSource(b)

	common := set.New[*ClassSymbol](ancA.Size())
	for _, sym := range ancA.Slice() {
		if ancB.Contains(sym) {
			common.Insert(sym)
		}
	}
	if common.Size() == 0 {
		return nil, sablerr.New(sablerr.NewIncompatibleTypes{First: a, Second: b})
	}

	minimal := make([]SourceType, 0, 1)
	for _, candidate := range common.Slice() {
		dominated := false
		for _, other := range common.Slice() {
			if other != candidate && u.IsSubclass(other, candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, &ClassType{Sym: candidate})
		}
	}
	if len(minimal) == 1 {
		return minimal[0], nil
	}
	slices.SortFunc(minimal, util.ComparingHashable[SourceType, uint64])
	return &IntersectionType{Members: minimal}, nil
}

// ancestorsOfSource collects every class symbol the given type conforms to.
// For an intersection, conforming to any single member is enough, so the
// member ancestor sets are unioned.
func (u *Universe) ancestorsOfSource(t SourceType) *set.Set[*ClassSymbol] {
	switch t := t.(type) {
	case *ClassType:
		return u.ancestorClasses(t.Sym)
	case *ArrayType:
		return set.From([]*ClassSymbol{u.top})
	case *IntersectionType:
		seqs := make([]iter.Seq[*ClassSymbol], 0, len(t.Members))
		total := 0
		for _, m := range t.Members {
			memberSet := u.ancestorsOfSource(m)
			total += memberSet.Size()
			seqs = append(seqs, memberSet.Items())
		}
		return util.SetFromSeq(util.ConcatIter(seqs...), total)
	default:
		return set.New[*ClassSymbol](0)
	}
}

func (u *Universe) ancestorClasses(c *ClassSymbol) *set.Set[*ClassSymbol] {
	acc := set.New[*ClassSymbol](8)
	var walk func(*ClassSymbol)
	walk = func(sym *ClassSymbol) {
		if sym == nil || acc.Contains(sym) {
			return
		}
		acc.Insert(sym)
		walk(sym.Super)
		for _, iface := range sym.Ifaces {
			walk(iface)
		}
	}
	walk(c)
	acc.Insert(u.top)
	return acc
}

// DominantMember reduces an intersection's member list to the single class
// the backend can carry on an operand: members that print as compounds are
// dropped, duplicates are folded, and the most specific class wins, with
// non-interface classes preferred over interfaces.
func (u *Universe) DominantMember(members []SourceType) (SourceType, error) {
	dedup := hset.Empty[SourceType](SourceHasher{})
	for _, m := range members {
		if strings.Contains(m.String(), "&") {
			continue
		}
		dedup.Add(m)
	}
	candidates := dedup.AsSlice()
	if len(candidates) == 0 {
		return nil, pkgerrors.New("intersection has no non-compound members to dominate")
	}
	slices.SortFunc(candidates, util.ComparingHashable[SourceType, uint64])

	classOf := func(t SourceType) *ClassSymbol {
		if ct, ok := t.(*ClassType); ok {
			return ct.Sym
		}
		return nil
	}

	// a member below every other candidate dominates outright
	for _, candidate := range candidates {
		sym := classOf(candidate)
		if sym == nil {
			continue
		}
		dominatesAll := true
		for _, other := range candidates {
			otherSym := classOf(other)
			if otherSym == nil || otherSym == sym {
				continue
			}
			if !u.IsSubclass(sym, otherSym) {
				dominatesAll = false
				break
			}
		}
		if dominatesAll {
			return candidate, nil
		}
	}
	for _, candidate := range candidates {
		if sym := classOf(candidate); sym != nil && !sym.IsIface {
			return candidate, nil
		}
	}
	return candidates[0], nil
}
