package dnt

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MarshalBinary implements encoding.BinaryMarshaler for
// transforming a document into DNT bytes
func (d *Document) MarshalBinary() (data []byte, err error) {
	if d.DataOffset < HeaderLen {
		return nil, errors.Wrapf(ErrDataOffset, "offset 0x%x", d.DataOffset)
	}

	w := new(writer)
	w.b.Grow(int(d.DataOffset) + len(d.Samples)*RecordLen)

	if err = w.writeHeader(d.Header); err != nil {
		return nil, err
	}
	w.writePadding(int(d.DataOffset) - HeaderLen)

	for _, s := range d.Samples {
		w.writeSample(s)
	}

	return w.Bytes(), nil
}

// WriteTo encodes the document into w. Nothing is written when encoding fails.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader(h Header) error {
	raw := rawHeader{
		VersionMajor: h.VersionMajor,
		VersionMinor: h.VersionMinor,
		DPI:          h.DPI,
		XSize:        h.XSize,
		YSize:        h.YSize,
		Rotation:     h.Rotation,
		Firmware:     h.Firmware,
		DataOffset:   h.DataOffset,
	}
	copy(raw.Marker[:], Marker)
	return binary.Write(&w.b, binary.LittleEndian, &raw)
}

func (w *writer) writePadding(n int) {
	for i := 0; i < n; i++ {
		w.b.WriteByte(padByte)
	}
}

func (w *writer) writeSample(s Sample) {
	rec := packRecord(s)
	w.b.Write(rec[:])
}

func packRecord(s Sample) [RecordLen]byte {
	return [RecordLen]byte{
		s.Pen,
		byte(s.X & 0x7f),
		byte((s.X >> 7) & 0x7f),
		byte(s.Y & 0x7f),
		byte((s.Y >> 7) & 0x7f),
		0,
		byte((s.X >> 14) + ((s.Y >> 12) & 0x0c)),
		0,
	}
}
