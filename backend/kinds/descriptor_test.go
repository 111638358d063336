package kinds_test

import (
	"testing"

	"github.com/sable-lang/sable/backend/kinds"
	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (w *testWorld) resolver() kinds.ClassResolver {
	return func(name string) (*types.ClassSymbol, error) {
		sym, ok := w.universe.ClassNamed(name)
		if !ok {
			return nil, sablerr.New(sablerr.NewUndefinedClass{Name: name})
		}
		return sym, nil
	}
}

func TestParseDescriptor(t *testing.T) {
	w := newTestWorld(t)

	cases := []struct {
		desc string
		want kinds.TypeKind
	}{
		{"V", kinds.Unit},
		{"Z", kinds.Bool},
		{"B", kinds.Byte},
		{"S", kinds.Short},
		{"C", kinds.Char},
		{"I", kinds.Int},
		{"J", kinds.Long},
		{"F", kinds.Float},
		{"D", kinds.Double},
		{"!", kinds.Concat},
		{"[I", kinds.ArrayOf(kinds.Int)},
		{"[[J", kinds.ArrayOf(kinds.ArrayOf(kinds.Long))},
		{"#I", kinds.BoxedOf(kinds.Int)},
		{"LCat;", w.ref(t, w.cat)},
		{"[LAnimal;", kinds.ArrayOf(w.ref(t, w.animal))},
		{"LNothing;", w.ctx.BottomRef()},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			got, err := w.ctx.ParseDescriptor(c.desc, w.resolver())
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.desc, kinds.Descriptor(got), "descriptor round trip")
		})
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	w := newTestWorld(t)

	cases := []struct {
		desc string
		code sablerr.ErrCode
	}{
		{"", sablerr.BadDescriptor},
		{"X", sablerr.BadDescriptor},
		{"[", sablerr.BadDescriptor},
		{"II", sablerr.BadDescriptor},
		{"LCat", sablerr.BadDescriptor},
		{"#LCat;", sablerr.BadDescriptor},
		{"LGriffin;", sablerr.UndefinedClass},
		{"LArray;", sablerr.MalformedReference},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			_, err := w.ctx.ParseDescriptor(c.desc, w.resolver())
			require.Error(t, err)
			var serr sablerr.SableError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, c.code, serr.Code())
		})
	}
}

func TestKindOfInvertsSourceOfKind(t *testing.T) {
	w := newTestWorld(t)

	for _, k := range []kinds.TypeKind{
		kinds.Unit, kinds.Bool, kinds.Byte, kinds.Short, kinds.Char,
		kinds.Int, kinds.Long, kinds.Float, kinds.Double,
		w.ref(t, w.cat), kinds.ArrayOf(kinds.Int),
		kinds.ArrayOf(w.ref(t, w.dog)), kinds.BoxedOf(kinds.Int),
	} {
		t.Run(k.String(), func(t *testing.T) {
			src, err := w.ctx.SourceOfKind(k)
			require.NoError(t, err)
			back, err := w.ctx.KindOf(src)
			require.NoError(t, err)
			assert.Equal(t, k, back)
		})
	}

	_, err := w.ctx.SourceOfKind(kinds.Concat)
	assert.Error(t, err, "the concat marker has no source counterpart")
}

func TestKindForPrimInverts(t *testing.T) {
	for _, p := range []types.Prim{
		types.PrimUnit, types.PrimBool, types.PrimByte, types.PrimShort,
		types.PrimChar, types.PrimInt, types.PrimLong, types.PrimFloat,
		types.PrimDouble,
	} {
		k := kinds.KindForPrim(p)
		back, ok := kinds.PrimForKind(k)
		require.True(t, ok)
		assert.Equal(t, p, back)
	}
}
