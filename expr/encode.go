package expr

import "encoding/binary"

// Encode writes h as a deterministic byte stream: a tag byte, then a
// 32-bit varid for literals, or a 32-bit child count followed by each
// child's own encoding (recursively) for operators. Shared subexpressions
// are not deduplicated in the wire form — decode(encode(h)) reconstructs a
// structurally equivalent expression up to the engine's own
// canonicalization, not a byte-identical arena.
//
// Endianness is little-endian by convention; the spec does not require
// cross-machine portability, only a deterministic round trip within one
// engine's lifetime.
func (m *Mgr) Encode(h Handle) ([]byte, error) {
	if err := m.own(h); err != nil {
		return nil, err
	}
	var buf []byte
	buf = m.encodeInto(buf, h.id)
	return buf, nil
}

func (m *Mgr) encodeInto(buf []byte, id int) []byte {
	n := m.pool.Get(id)
	switch n.kind {
	case kConst0:
		return append(buf, 0x00)
	case kConst1:
		return append(buf, 0x01)
	case kPosLit:
		buf = append(buf, 0x02)
		return appendU32(buf, uint32(n.varID))
	case kNegLit:
		buf = append(buf, 0x03)
		return appendU32(buf, uint32(n.varID))
	case kAnd, kOr, kXor:
		tag := map[kind]byte{kAnd: 0x04, kOr: 0x05, kXor: 0x06}[n.kind]
		buf = append(buf, tag)
		buf = appendU32(buf, uint32(len(n.children)))
		for _, c := range n.children {
			buf = m.encodeInto(buf, c)
		}
		return buf
	}
	return buf
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// Decode reconstructs a Handle from bytes produced by Encode, rebuilding
// every node through the normal constructors so the result is fully
// canonicalized (and may therefore collapse relative to the original if the
// original somehow was not — the engine always returns canonical nodes, so
// in practice this only matters for hand-crafted byte streams).
func (m *Mgr) Decode(data []byte) (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	h, rest, err := m.decodeOne(data)
	if err != nil {
		return Handle{}, err
	}
	if len(rest) != 0 {
		return Handle{}, ErrBadEncoding
	}
	return h, nil
}

func (m *Mgr) decodeOne(data []byte) (Handle, []byte, error) {
	if len(data) == 0 {
		return Handle{}, nil, ErrTruncated
	}
	tag := data[0]
	data = data[1:]
	switch tag {
	case 0x00:
		h, err := m.Zero()
		return h, data, err
	case 0x01:
		h, err := m.One()
		return h, data, err
	case 0x02, 0x03:
		v, rest, err := readU32(data)
		if err != nil {
			return Handle{}, nil, err
		}
		h, err := m.Lit(int(v), tag == 0x03)
		return h, rest, err
	case 0x04, 0x05, 0x06:
		nc, rest, err := readU32(data)
		if err != nil {
			return Handle{}, nil, err
		}
		children := make([]Handle, nc)
		for i := range children {
			c, r, err := m.decodeOne(rest)
			if err != nil {
				return Handle{}, nil, err
			}
			children[i] = c
			rest = r
		}
		var h Handle
		switch tag {
		case 0x04:
			h, err = m.MakeAnd(children...)
		case 0x05:
			h, err = m.MakeOr(children...)
		default:
			h, err = m.MakeXor(children...)
		}
		return h, rest, err
	default:
		return Handle{}, nil, ErrBadEncoding
	}
}

func readU32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, ErrTruncated
	}
	return binary.LittleEndian.Uint32(data[:4]), data[4:], nil
}
