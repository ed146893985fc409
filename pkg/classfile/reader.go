package classfile

import (
	"encoding/binary"
	"io"
	"math"
)

// reader reads big-endian class file items. The first error sticks and
// every later read returns zero values.
type reader struct {
	r   io.Reader
	buf [8]byte
	err error
}

func (r *reader) fill(n int) []byte {
	if r.err != nil {
		return nil
	}
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		r.err = err
		return nil
	}
	return r.buf[:n]
}

func (r *reader) u1() uint8 {
	if b := r.fill(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u2() uint16 {
	if b := r.fill(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (r *reader) u4() uint32 {
	if b := r.fill(4); b != nil {
		return binary.BigEndian.Uint32(b)
	}
	return 0
}

func (r *reader) u8() uint64 {
	if b := r.fill(8); b != nil {
		return binary.BigEndian.Uint64(b)
	}
	return 0
}

func (r *reader) f4() float32 { return math.Float32frombits(r.u4()) }
func (r *reader) f8() float64 { return math.Float64frombits(r.u8()) }

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		r.err = err
		return nil
	}
	return b
}
