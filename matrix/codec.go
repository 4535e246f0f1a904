package matrix

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// codecVersion tags the encoded layout so the format can evolve without
// silently misreading old payloads.
const codecVersion = 1

var (
	_ msgpack.CustomEncoder = (*Dense)(nil)
	_ msgpack.CustomDecoder = (*Dense)(nil)
)

// EncodeMsgpack writes the matrix as [version, rows, cols, data...]. The
// encoding is deterministic for a given matrix, which is what the cache
// fingerprinter relies on.
func (m *Dense) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3 + len(m.data)); err != nil {
		return err
	}
	if err := enc.EncodeInt(codecVersion); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(m.rows)); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(m.cols)); err != nil {
		return err
	}
	for _, v := range m.data {
		if err := enc.EncodeFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads the layout written by EncodeMsgpack.
func (m *Dense) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	version, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	if version != codecVersion {
		return fmt.Errorf("matrix: unsupported codec version %d", version)
	}
	rows, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	cols, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 || n != 3+rows*cols {
		return fmt.Errorf("matrix: decode %dx%d with %d fields: %w", rows, cols, n, ErrInvalidDimensions)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		if data[i], err = dec.DecodeFloat64(); err != nil {
			return err
		}
	}
	m.rows, m.cols, m.data = rows, cols, data
	return nil
}
