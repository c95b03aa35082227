package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiko-dev/synthcore/expr"
)

func TestNewLogic_TranslatesAndOrXor(t *testing.T) {
	m := expr.NewMgr()
	v0, _ := m.PosLit(0)
	v1, _ := m.PosLit(1)
	v2, _ := m.PosLit(2)

	and, _ := m.MakeAnd(v0, v1)
	e, _ := m.MakeXor(and, v2)

	g := NewGraph()
	leaves := make([]Handle, 3)
	for i := range leaves {
		leaves[i], _ = g.NewInput()
	}

	h, err := g.NewLogic(e, leaves)
	require.NoError(t, err)

	id, ok := h.NodeID()
	require.True(t, ok)
	kind, err := g.NodeKind(id)
	require.NoError(t, err)
	assert.Equal(t, KindLogic, kind)

	isXor, err := g.IsXor(id)
	require.NoError(t, err)
	assert.True(t, isXor)
}

func TestNewLogic_PreservesSharing(t *testing.T) {
	m := expr.NewMgr()
	v0, _ := m.PosLit(0)
	v1, _ := m.PosLit(1)
	v2, _ := m.PosLit(2)
	v3, _ := m.PosLit(3)

	// shared is an OR so that MakeAnd keeps it as one child of e1 and e2
	// instead of flattening its operands into them.
	shared, _ := m.MakeOr(v0, v1)
	e1, _ := m.MakeAnd(shared, v2)
	e2, _ := m.MakeAnd(shared, v3)
	top, _ := m.MakeOr(e1, e2) // shared is reachable through both e1 and e2

	g := NewGraph()
	leaves := make([]Handle, 4)
	for i := range leaves {
		leaves[i], _ = g.NewInput()
	}

	_, err := g.NewLogic(top, leaves)
	require.NoError(t, err)

	// Without memoization across the two paths to `shared`, translating it
	// once per occurrence would cost 5 Logic nodes (shared built twice);
	// with memoization it costs 4 (e1, e2, and the AND-of-negated
	// realizations of shared's and top's ORs).
	stats, err := g.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Logic)
}

func TestNewLogic_NegatedLiteralInvertsLeaf(t *testing.T) {
	m := expr.NewMgr()
	v0, _ := m.PosLit(0)
	notV0, _ := v0.Not()

	g := NewGraph()
	a, _ := g.NewInput()

	h, err := g.NewLogic(notV0, []Handle{a})
	require.NoError(t, err)
	assert.True(t, h.Equal(a.Invert()))
}

func TestNewLogic_OutOfRangeLeafRejected(t *testing.T) {
	m := expr.NewMgr()
	v5, _ := m.PosLit(5)

	g := NewGraph()
	a, _ := g.NewInput()

	_, err := g.NewLogic(v5, []Handle{a})
	assert.ErrorIs(t, err, ErrLeafOutOfRange)
}
