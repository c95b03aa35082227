package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTripsConstants(t *testing.T) {
	m := NewMgr()
	zero, _ := m.Zero()
	one, _ := m.One()

	for _, h := range []Handle{zero, one} {
		data, err := m.Encode(h)
		require.NoError(t, err)
		got, err := m.Decode(data)
		require.NoError(t, err)
		assert.True(t, got.Equal(h))
	}
}

func TestEncodeDecode_RoundTripsLiterals(t *testing.T) {
	m := NewMgr()
	pos, _ := m.PosLit(42)
	neg, _ := m.NegLit(42)

	for _, h := range []Handle{pos, neg} {
		data, err := m.Encode(h)
		require.NoError(t, err)
		got, err := m.Decode(data)
		require.NoError(t, err)
		assert.True(t, got.Equal(h))
	}
}

func TestEncodeDecode_RoundTripsOperatorTrees(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(0)
	b, _ := m.PosLit(1)
	c, _ := m.PosLit(2)

	and, _ := m.MakeAnd(a, b, c)
	or, _ := m.MakeOr(and, c)
	xor, _ := m.MakeXor(or, a)

	data, err := m.Encode(xor)
	require.NoError(t, err)

	decoded, err := m.Decode(data)
	require.NoError(t, err)
	assertEquivalent(t, m, xor, decoded)
}

func TestDecode_TruncatedInputIsRejected(t *testing.T) {
	m := NewMgr()
	a, _ := m.PosLit(3)
	b, _ := m.PosLit(4)
	h, _ := m.MakeAnd(a, b)

	data, err := m.Encode(h)
	require.NoError(t, err)

	_, err = m.Decode(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecode_UnknownTagIsRejected(t *testing.T) {
	m := NewMgr()
	_, err := m.Decode([]byte{0xFF})
	assert.ErrorIs(t, err, ErrBadEncoding)
}

func TestDecode_TrailingBytesAreRejected(t *testing.T) {
	m := NewMgr()
	zero, _ := m.Zero()
	data, _ := m.Encode(zero)
	data = append(data, 0x00)

	_, err := m.Decode(data)
	assert.ErrorIs(t, err, ErrBadEncoding)
}
