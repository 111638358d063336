package types_test

import (
	"testing"

	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// menagerie is the class hierarchy most lattice tests run against:
//
//	Walks, Swims             interfaces
//	Animal                   class
//	Cat, Dog <: Animal       classes
//	Amphibian <: Animal, Walks, Swims
type menagerie struct {
	u *types.Universe

	walks, swims                *types.ClassSymbol
	animal, cat, dog, amphibian *types.ClassSymbol
}

func newMenagerie(t *testing.T) *menagerie {
	t.Helper()
	u := types.NewUniverse()
	m := &menagerie{u: u}
	var err error
	m.walks, err = u.DefineInterface("Walks")
	require.NoError(t, err)
	m.swims, err = u.DefineInterface("Swims")
	require.NoError(t, err)
	m.animal, err = u.Define("Animal", nil)
	require.NoError(t, err)
	m.cat, err = u.Define("Cat", m.animal)
	require.NoError(t, err)
	m.dog, err = u.Define("Dog", m.animal)
	require.NoError(t, err)
	m.amphibian, err = u.Define("Amphibian", m.animal, m.walks, m.swims)
	require.NoError(t, err)
	return m
}

func classOf(sym *types.ClassSymbol) *types.ClassType {
	return &types.ClassType{Sym: sym}
}

func TestIsSubclass(t *testing.T) {
	m := newMenagerie(t)
	u := m.u

	assert.True(t, u.IsSubclass(m.cat, m.cat), "reflexive")
	assert.True(t, u.IsSubclass(m.cat, m.animal))
	assert.True(t, u.IsSubclass(m.cat, u.TopClass()))
	assert.True(t, u.IsSubclass(m.amphibian, m.swims), "through an interface")
	assert.True(t, u.IsSubclass(u.BottomClass(), m.cat), "bottom sits below everything")
	assert.False(t, u.IsSubclass(m.animal, m.cat))
	assert.False(t, u.IsSubclass(m.cat, m.dog))
	assert.False(t, u.IsSubclass(m.walks, m.swims))
	assert.False(t, u.IsSubclass(u.PrimitiveClass(types.PrimInt), u.TopClass()),
		"primitive classes live outside the reference hierarchy")
}

func TestIsSubclassSurvivesInterfaceDiamonds(t *testing.T) {
	u := types.NewUniverse()
	root, err := u.DefineInterface("Node")
	require.NoError(t, err)
	left, err := u.DefineInterface("Left", root)
	require.NoError(t, err)
	right, err := u.DefineInterface("Right", root)
	require.NoError(t, err)
	leaf, err := u.Define("Leaf", nil, left, right)
	require.NoError(t, err)

	assert.True(t, u.IsSubclass(leaf, root))
	assert.True(t, u.IsSubclass(leaf, right))
	assert.False(t, u.IsSubclass(leaf, u.BottomClass()))
}

func TestLeastUpperBoundClasses(t *testing.T) {
	m := newMenagerie(t)
	u := m.u

	t.Run("siblings meet at their superclass", func(t *testing.T) {
		got, err := u.LeastUpperBound(classOf(m.cat), classOf(m.dog))
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.animal)), "got %s", got)
	})
	t.Run("an ancestor absorbs its descendant", func(t *testing.T) {
		got, err := u.LeastUpperBound(classOf(m.cat), classOf(m.animal))
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.animal)), "got %s", got)
	})
	t.Run("bottom is the identity", func(t *testing.T) {
		got, err := u.LeastUpperBound(classOf(u.BottomClass()), classOf(m.cat))
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.cat)), "got %s", got)
	})
	t.Run("top absorbs", func(t *testing.T) {
		got, err := u.LeastUpperBound(classOf(m.cat), classOf(u.TopClass()))
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(u.TopClass())), "got %s", got)
	})
	t.Run("primitives widen", func(t *testing.T) {
		got, err := u.LeastUpperBound(
			&types.PrimType{P: types.PrimInt}, &types.PrimType{P: types.PrimLong})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, &types.PrimType{P: types.PrimLong}))
	})
	t.Run("a primitive and a class never join", func(t *testing.T) {
		_, err := u.LeastUpperBound(&types.PrimType{P: types.PrimInt}, classOf(m.cat))
		var serr sablerr.SableError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, sablerr.IncompatibleTypes, serr.Code())
	})
}

func TestLeastUpperBoundArrays(t *testing.T) {
	m := newMenagerie(t)
	u := m.u

	t.Run("reference arrays join elementwise", func(t *testing.T) {
		got, err := u.LeastUpperBound(
			&types.ArrayType{Elem: classOf(m.cat)},
			&types.ArrayType{Elem: classOf(m.dog)})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, &types.ArrayType{Elem: classOf(m.animal)}),
			"got %s", got)
	})
	t.Run("distinct primitive arrays only share the root", func(t *testing.T) {
		got, err := u.LeastUpperBound(
			&types.ArrayType{Elem: &types.PrimType{P: types.PrimInt}},
			&types.ArrayType{Elem: &types.PrimType{P: types.PrimLong}})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(u.TopClass())), "got %s", got)
	})
	t.Run("an array against a class falls back to common ancestors", func(t *testing.T) {
		got, err := u.LeastUpperBound(&types.ArrayType{Elem: classOf(m.cat)}, classOf(m.dog))
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(u.TopClass())), "got %s", got)
	})
}

func TestLeastUpperBoundIntersections(t *testing.T) {
	m := newMenagerie(t)
	u := m.u
	otter, err := u.Define("Otter", nil, m.walks, m.swims)
	require.NoError(t, err)

	t.Run("unrelated minimal ancestors form an intersection", func(t *testing.T) {
		got, err := u.LeastUpperBound(classOf(m.amphibian), classOf(otter))
		require.NoError(t, err)
		sect, ok := got.(*types.IntersectionType)
		require.True(t, ok, "expected an intersection, got %s", got)
		require.Len(t, sect.Members, 2)
		names := []string{sect.Members[0].String(), sect.Members[1].String()}
		assert.ElementsMatch(t, []string{"Walks", "Swims"}, names)
	})
	t.Run("member order does not depend on argument order", func(t *testing.T) {
		ab, err := u.LeastUpperBound(classOf(m.amphibian), classOf(otter))
		require.NoError(t, err)
		ba, err := u.LeastUpperBound(classOf(otter), classOf(m.amphibian))
		require.NoError(t, err)
		assert.True(t, types.Equal(ab, ba), "%s vs %s", ab, ba)
	})
	t.Run("an intersection joins through the union of its member ancestors", func(t *testing.T) {
		sect := &types.IntersectionType{Members: []types.SourceType{
			classOf(m.walks), classOf(m.swims),
		}}
		got, err := u.LeastUpperBound(sect, classOf(m.amphibian))
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestDominantMember(t *testing.T) {
	m := newMenagerie(t)
	u := m.u

	t.Run("the most specific member wins", func(t *testing.T) {
		got, err := u.DominantMember([]types.SourceType{
			classOf(m.walks), classOf(m.amphibian),
		})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.amphibian)), "got %s", got)
	})
	t.Run("classes beat interfaces when no member dominates", func(t *testing.T) {
		got, err := u.DominantMember([]types.SourceType{
			classOf(m.walks), classOf(m.animal),
		})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.animal)), "got %s", got)
	})
	t.Run("compound members are dropped", func(t *testing.T) {
		compound := &types.IntersectionType{Members: []types.SourceType{
			classOf(m.walks), classOf(m.swims),
		}}
		got, err := u.DominantMember([]types.SourceType{compound, classOf(m.cat)})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.cat)), "got %s", got)
	})
	t.Run("duplicates fold away", func(t *testing.T) {
		got, err := u.DominantMember([]types.SourceType{
			classOf(m.cat), classOf(m.cat),
		})
		require.NoError(t, err)
		assert.True(t, types.Equal(got, classOf(m.cat)), "got %s", got)
	})
	t.Run("no usable member is an error", func(t *testing.T) {
		compound := &types.IntersectionType{Members: []types.SourceType{
			classOf(m.walks), classOf(m.swims),
		}}
		_, err := u.DominantMember([]types.SourceType{compound})
		assert.Error(t, err)
	})
}
