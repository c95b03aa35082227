package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPort_BindsAndRejectsDoubleBinding(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewInput()
	b, _ := g.NewInput()
	aID, _ := a.NodeID()
	bID, _ := b.NodeID()

	idx, err := g.NewPort("in", PortInput, []int{aID, bID})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	port, bit, ok := g.PortOf(aID)
	assert.True(t, ok)
	assert.Equal(t, 0, port)
	assert.Equal(t, 0, bit)

	port, bit, ok = g.PortOf(bID)
	assert.True(t, ok)
	assert.Equal(t, 0, port)
	assert.Equal(t, 1, bit)

	_, err = g.NewPort("in2", PortInput, []int{aID})
	assert.ErrorIs(t, err, ErrPortBitTaken)
}

func TestNewPort_RejectsDirectionMismatch(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewInput()
	aID, _ := a.NodeID()

	_, err := g.NewPort("out", PortOutput, []int{aID})
	assert.ErrorIs(t, err, ErrPortKindMismatch)
}

func TestNewDFF_BuildsFiveNodeAggregate(t *testing.T) {
	g := NewGraph()
	d, _ := g.NewInput()
	clk, _ := g.NewInput()

	idx, err := g.NewDFF(d, clk, nil, nil)
	require.NoError(t, err)

	dff, err := g.DFFAt(idx)
	require.NoError(t, err)
	assert.False(t, dff.HasClr)
	assert.False(t, dff.HasPre)

	kind, err := g.NodeKind(dff.DataIn)
	require.NoError(t, err)
	assert.Equal(t, KindOutput, kind)

	kind, err = g.NodeKind(dff.Q)
	require.NoError(t, err)
	assert.Equal(t, KindInput, kind)

	// A DFF's internal sinks are not primary outputs.
	stats, err := g.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Outputs)
}

func TestNewDFF_WithClearAndPreset(t *testing.T) {
	g := NewGraph()
	d, _ := g.NewInput()
	clk, _ := g.NewInput()
	clr, _ := g.NewInput()
	pre, _ := g.NewInput()

	idx, err := g.NewDFF(d, clk, &clr, &pre)
	require.NoError(t, err)

	dff, err := g.DFFAt(idx)
	require.NoError(t, err)
	assert.True(t, dff.HasClr)
	assert.True(t, dff.HasPre)
}
