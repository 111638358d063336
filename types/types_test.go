package types_test

import (
	"testing"

	"github.com/sable-lang/sable/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidenPrim(t *testing.T) {
	cases := []struct {
		a, b types.Prim
		want types.Prim
	}{
		{types.PrimByte, types.PrimShort, types.PrimShort},
		{types.PrimShort, types.PrimByte, types.PrimShort},
		{types.PrimByte, types.PrimChar, types.PrimInt},
		{types.PrimChar, types.PrimByte, types.PrimInt},
		{types.PrimShort, types.PrimChar, types.PrimInt},
		{types.PrimChar, types.PrimInt, types.PrimInt},
		{types.PrimInt, types.PrimLong, types.PrimLong},
		{types.PrimLong, types.PrimFloat, types.PrimFloat},
		{types.PrimFloat, types.PrimDouble, types.PrimDouble},
		{types.PrimInt, types.PrimInt, types.PrimInt},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"+"+c.b.String(), func(t *testing.T) {
			got, ok := types.WidenPrim(c.a, c.b)
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}

	_, ok := types.WidenPrim(types.PrimBool, types.PrimInt)
	assert.False(t, ok, "Bool does not widen")
	_, ok = types.WidenPrim(types.PrimUnit, types.PrimUnit)
	assert.False(t, ok)
}

func TestSourceTypeEquality(t *testing.T) {
	u := types.NewUniverse()
	animal, err := u.Define("Animal", nil)
	require.NoError(t, err)

	intT := &types.PrimType{P: types.PrimInt}
	assert.True(t, types.Equal(intT, &types.PrimType{P: types.PrimInt}))
	assert.False(t, types.Equal(intT, &types.PrimType{P: types.PrimLong}))
	assert.True(t, types.Equal(&types.ArrayType{Elem: intT}, &types.ArrayType{Elem: intT}))
	assert.True(t, types.Equal(&types.ClassType{Sym: animal}, &types.ClassType{Sym: animal}))
	assert.False(t, types.Equal(&types.ClassType{Sym: animal}, intT))
}

func TestSourceTypeHashingIsStructural(t *testing.T) {
	u := types.NewUniverse()
	animal, err := u.Define("Animal", nil)
	require.NoError(t, err)

	a := &types.ArrayType{Elem: &types.ClassType{Sym: animal}}
	b := &types.ArrayType{Elem: &types.ClassType{Sym: animal}}
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), (&types.ClassType{Sym: animal}).Hash())
}

func TestUniversePrimitiveMappingIsInvertible(t *testing.T) {
	u := types.NewUniverse()
	for _, p := range []types.Prim{
		types.PrimUnit, types.PrimBool, types.PrimByte, types.PrimShort,
		types.PrimChar, types.PrimInt, types.PrimLong, types.PrimFloat,
		types.PrimDouble,
	} {
		cls := u.PrimitiveClass(p)
		require.NotNil(t, cls, "primitive class for %s", p)
		back, ok := u.PrimOf(cls)
		require.True(t, ok)
		assert.Equal(t, p, back)

		boxed := u.BoxedClass(p)
		require.NotNil(t, boxed)
		backBoxed, ok := u.BoxedPrimOf(boxed)
		require.True(t, ok)
		assert.Equal(t, p, backBoxed)
	}
}

func TestUniverseRejectsDuplicates(t *testing.T) {
	u := types.NewUniverse()
	_, err := u.Define("Animal", nil)
	require.NoError(t, err)
	_, err = u.Define("Animal", nil)
	assert.Error(t, err)
	_, err = u.Define("", nil)
	assert.Error(t, err)
}
