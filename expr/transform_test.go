package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_NoOccurrenceIsIdentity(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)
	h, _ := m.MakeAnd(a, b)

	sub, _ := m.PosLit(2)
	composed, err := m.Compose(h, 7, sub) // var 7 does not occur in h
	require.NoError(t, err)
	assert.True(t, composed.Equal(h))
}

func TestCompose_SubstitutesPositiveAndNegativeOccurrences(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)

	expr, _ := m.MakeAnd(a, b) // v0 & v1
	sub, _ := m.PosLit(2)
	composed, err := m.Compose(expr, 0, sub)
	require.NoError(t, err)

	want, _ := m.MakeAnd(sub, b)
	assert.True(t, composed.Equal(want))
}

func TestRemapVar_RenamesAndPreservesPolarity(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	notB, _ := handleNegLit(t, m, 1)
	h, _ := m.MakeAnd(a, notB)

	renamed, err := m.RemapVar(h, map[int]int{0: 10, 1: 11})
	require.NoError(t, err)

	want0, _ := m.PosLit(10)
	want1, _ := m.NegLit(11)
	want, _ := m.MakeAnd(want0, want1)
	assert.True(t, renamed.Equal(want))
}

func TestSimplify_IsIdentityOnCanonicalTree(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)
	h, _ := m.MakeOr(a, b)

	simplified, err := m.Simplify(h)
	require.NoError(t, err)
	assert.True(t, simplified.Equal(h))
}

func TestEval_MatchesTruthTable(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)
	h, _ := m.MakeXor(a, b)

	for _, row := range []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	} {
		got, err := m.Eval(h, map[int]bool{0: row.a, 1: row.b})
		require.NoError(t, err)
		assert.Equal(t, row.want, got)
	}
}

func TestFromTruthTable_RoundTripsThroughEval(t *testing.T) {
	m := NewMgr()
	// Majority-of-3 truth table: minterm rows 3,5,6,7 (binary 011,101,110,111).
	table := make(TruthTable, 8)
	for row := range table {
		ones := 0
		for b := 0; b < 3; b++ {
			if (row>>uint(b))&1 == 1 {
				ones++
			}
		}
		table[row] = ones >= 2
	}

	h, err := m.FromTruthTable([]int{0, 1, 2}, table)
	require.NoError(t, err)

	for row := range table {
		assignment := map[int]bool{
			0: row&1 == 1,
			1: (row>>1)&1 == 1,
			2: (row>>2)&1 == 1,
		}
		got, err := m.Eval(h, assignment)
		require.NoError(t, err)
		assert.Equal(t, table[row], got)
	}
}

func TestFromTruthTable_SizeMismatchRejected(t *testing.T) {
	m := NewMgr()
	_, err := m.FromTruthTable([]int{0, 1}, TruthTable{true, false, true})
	assert.ErrorIs(t, err, ErrTruthTableSize)
}

func TestMakeTV_RoundTripsThroughFromTruthTable(t *testing.T) {
	m := NewMgr()
	table := make(TruthTable, 8)
	for row := range table {
		ones := 0
		for b := 0; b < 3; b++ {
			if (row>>uint(b))&1 == 1 {
				ones++
			}
		}
		table[row] = ones >= 2
	}

	h, err := m.FromTruthTable([]int{0, 1, 2}, table)
	require.NoError(t, err)

	got, err := m.MakeTV(h, 3)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestMakeTV_AgreesWithEvalAtEveryRow(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)
	c, _ := m.PosLit(2)
	ab, _ := m.MakeAnd(a, b)
	h, _ := m.MakeXor(ab, c)

	got, err := m.MakeTV(h, 3)
	require.NoError(t, err)
	require.Len(t, got, 8)

	for row, want := range got {
		assignment := map[int]bool{
			0: row&1 == 1,
			1: (row>>1)&1 == 1,
			2: (row>>2)&1 == 1,
		}
		evaluated, err := m.Eval(h, assignment)
		require.NoError(t, err)
		assert.Equal(t, want, evaluated)
	}
}

func TestMakeTV_NegativeCountRejected(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	_, err := m.MakeTV(a, -1)
	assert.ErrorIs(t, err, ErrTruthTableSize)
}

func handleNegLit(t *testing.T, m *Mgr, v int) (Handle, error) {
	t.Helper()
	return m.NegLit(v)
}
