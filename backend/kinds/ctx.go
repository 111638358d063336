package kinds

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/sable-lang/sable/internal/log"
	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
	"github.com/sable-lang/sable/util"
)

// Oracle is the capability the lattice needs from the surrounding type
// system: distinguished class identities, nominal subtyping, and the full
// source-level least upper bound. A Ctx never reads ambient compiler state;
// everything it consults arrives through this interface.
type Oracle interface {
	TopClass() *types.ClassSymbol
	BottomClass() *types.ClassSymbol
	ArrayClass() *types.ClassSymbol

	IsSubclass(sub, sup *types.ClassSymbol) bool
	SourceOf(c *types.ClassSymbol) types.SourceType
	PrimitiveClass(p types.Prim) *types.ClassSymbol
	PrimOf(c *types.ClassSymbol) (types.Prim, bool)
	BoxedClass(p types.Prim) *types.ClassSymbol
	BoxedPrimOf(c *types.ClassSymbol) (types.Prim, bool)

	LeastUpperBound(a, b types.SourceType) (types.SourceType, error)
}

// IntersectionDominator is the optional oracle surface used only by lub
// verification: reducing a compound lub answer to its single dominant
// member for consistency checking.
type IntersectionDominator interface {
	DominantMember(members []types.SourceType) (types.SourceType, error)
}

var _ Oracle = (*types.Universe)(nil)
var _ IntersectionDominator = (*types.Universe)(nil)

// Ctx evaluates lattice operations against one oracle. All operations are
// pure; the only mutable state is a write-only diagnostic counter and a
// memo cache for lub answers, both safe for concurrent use.
type Ctx struct {
	oracle    Oracle
	logger    *slog.Logger
	verifyLub bool

	// lubCalls counts lub invocations for diagnostics. It is never read to
	// decide anything.
	lubCalls atomic.Int64

	// independent workers share one Ctx, so the memo map needs the lock
	lubMu    sync.Mutex
	lubCache map[util.Pair[TypeKind, TypeKind]]TypeKind
}

func NewCtx(oracle Oracle) *Ctx {
	return &Ctx{
		oracle:   oracle,
		logger:   log.DefaultLogger.With("section", "backend"),
		lubCache: make(map[util.Pair[TypeKind, TypeKind]]TypeKind),
	}
}

// VerifyLub turns on the diagnostic cross-check of compound lub answers.
// It only logs; no returned value changes.
func (c *Ctx) VerifyLub() *Ctx {
	c.verifyLub = true
	return c
}

// LubCalls reports how many lub computations this Ctx has performed.
func (c *Ctx) LubCalls() int64 { return c.lubCalls.Load() }

// Ref builds a reference kind over cls. The array class is rejected because
// array types are represented structurally through ArrayKind, and a missing
// class can never back a reference.
func (c *Ctx) Ref(cls *types.ClassSymbol) (TypeKind, error) {
	if cls == nil {
		return nil, sablerr.New(sablerr.NewMalformedReference{Detail: "no class identity"})
	}
	if cls == c.oracle.ArrayClass() {
		return nil, sablerr.New(sablerr.NewMalformedReference{
			Detail: "the array class must be represented structurally, not nominally",
		})
	}
	return RefKind{Class: cls}, nil
}

// TopRef is the universal top reference kind, the imprecise join of all
// reference and array kinds.
func (c *Ctx) TopRef() TypeKind { return RefKind{Class: c.oracle.TopClass()} }

// BottomRef is the reference kind with no instances, a subtype of every
// reference and array kind.
func (c *Ctx) BottomRef() TypeKind { return RefKind{Class: c.oracle.BottomClass()} }

func (c *Ctx) IsBottom(k TypeKind) bool {
	ref, ok := k.(RefKind)
	return ok && ref.Class == c.oracle.BottomClass()
}
