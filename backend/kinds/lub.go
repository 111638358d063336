package kinds

import (
	"strings"

	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
	"github.com/sable-lang/sable/util"
)

// Lub computes the least upper bound of two kinds, going through the full
// source type system where the cheap MaxType reference join would lose
// precision. Both operands must be reference-or-array once the primitive
// special cases are exhausted; anything else is IncompatibleTypes.
func (c *Ctx) Lub(a, b TypeKind) (TypeKind, error) {
	c.lubCalls.Add(1)

	if a == b {
		return a, nil
	}
	if c.IsBottom(a) {
		return b, nil
	}
	if c.IsBottom(b) {
		return a, nil
	}
	if special, ok := c.lubSpecialCase(a, b); ok {
		return special, nil
	}
	if !IsRefOrArray(a) || !IsRefOrArray(b) {
		return nil, sablerr.New(sablerr.NewIncompatibleTypes{First: a, Second: b})
	}

	key := util.NewPair(a, b)
	c.lubMu.Lock()
	cached, ok := c.lubCache[key]
	c.lubMu.Unlock()
	if ok {
		return cached, nil
	}

	srcA, err := c.SourceOfKind(a)
	if err != nil {
		return nil, err
	}
	srcB, err := c.SourceOfKind(b)
	if err != nil {
		return nil, err
	}
	srcLub, err := c.oracle.LeastUpperBound(srcA, srcB)
	if err != nil {
		return nil, err
	}
	result, err := c.KindOf(srcLub)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("computed lub through the oracle",
		"lhs", slogKind(a), "rhs", slogKind(b), "lub", slogKind(result))
	if c.verifyLub {
		c.verifyLubResult(a, b, srcLub, result)
	}
	// the relation is symmetric, so remember both orientations
	c.lubMu.Lock()
	c.lubCache[key] = result
	c.lubCache[key.Flip()] = result
	c.lubMu.Unlock()
	return result, nil
}

// lubSpecialCase holds the small closed table that takes precedence over
// the oracle: boxed pairs, boxed against references and arrays, and the
// numeric widenings the verifier accepts without a conversion.
func (c *Ctx) lubSpecialCase(a, b TypeKind) (TypeKind, bool) {
	if boxedA, ok := a.(BoxedKind); ok {
		if boxedB, ok := b.(BoxedKind); ok {
			if boxedA.Of == boxedB.Of {
				return boxedA, true
			}
			// two distinct boxes never widen into a common box: box identity
			// would be lost, so the answer degrades to the top reference
			return c.TopRef(), true
		}
		if IsRefOrArray(b) {
			return c.TopRef(), true
		}
		return nil, false
	}
	if _, ok := b.(BoxedKind); ok {
		if IsRefOrArray(a) {
			return c.TopRef(), true
		}
		return nil, false
	}

	intWidening := func(k TypeKind) bool {
		switch k.(type) {
		case ByteKind, ShortKind, CharKind, BoolKind:
			return true
		default:
			return false
		}
	}
	if a == Int && intWidening(b) || b == Int && intWidening(a) {
		return Int, true
	}
	return nil, false
}

// verifyLubResult cross-checks a compound oracle answer against the
// intersection dominator. Purely diagnostic: it logs and returns.
func (c *Ctx) verifyLubResult(a, b TypeKind, srcLub types.SourceType, produced TypeKind) {
	compound, ok := srcLub.(*types.IntersectionType)
	if !ok {
		return
	}
	dominator, ok := c.oracle.(IntersectionDominator)
	if !ok {
		return
	}
	// members that print as compounds themselves cannot dominate
	candidates := make([]types.SourceType, 0, len(compound.Members))
	for _, m := range compound.Members {
		if strings.Contains(m.String(), "&") {
			continue
		}
		candidates = append(candidates, m)
	}
	dominant, err := dominator.DominantMember(candidates)
	if err != nil {
		c.logger.Warn("lub verification could not reduce compound result",
			"lhs", slogKind(a), "rhs", slogKind(b), "compound", srcLub.String(), "err", err)
		return
	}
	reduced, err := c.KindOf(dominant)
	if err != nil {
		c.logger.Warn("lub verification could not translate dominant member",
			"dominant", dominant.String(), "err", err)
		return
	}
	if reduced != produced {
		c.logger.Warn("lub verification disagrees with produced kind",
			"lhs", slogKind(a), "rhs", slogKind(b),
			"produced", slogKind(produced), "reduced", slogKind(reduced))
		return
	}
	c.logger.Debug("lub verification agreed",
		"lhs", slogKind(a), "rhs", slogKind(b), "lub", slogKind(produced))
}
