package cellmap

import "errors"

// ErrMissingMatch is a mapping violation: MapRecord has no cell/cut entry
// for a (node, polarity) pair reachable from a port output, DFF, or latch.
var ErrMissingMatch = errors.New("cellmap: no match recorded for this node at the required polarity")

// ErrMissingConstCell is a mapping violation: a cone bottoms out at a tied
// constant but MapRecord has no cell for that constant value.
var ErrMissingConstCell = errors.New("cellmap: no constant cell recorded for the required value")

// ErrMissingDFFCell is a mapping violation: neither Q polarity has a DFF
// cell recorded for a subject D-FF.
var ErrMissingDFFCell = errors.New("cellmap: no DFF cell recorded for either Q polarity")

// ErrMissingLatchCell mirrors ErrMissingDFFCell for latches.
var ErrMissingLatchCell = errors.New("cellmap: no latch cell recorded for either Q polarity")

// ErrCutLengthMismatch is returned when a matched cell's input pin count
// does not agree with its cut's leaf count.
var ErrCutLengthMismatch = errors.New("cellmap: cell input count does not match its cut's leaf count")
