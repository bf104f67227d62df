// Package dnt decodes and encodes the stroke capture files (.DNT) written by
// G-Note style writing tablets.
//
// A file is a fixed 46 byte header followed, at DataOffset, by a stream of
// 8 byte pen samples. Each sample carries a pen code and two coordinates
// bit-packed in 7 bit groups.
package dnt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Marker is the 12 byte signature at the start of every file:
// "UEDY", two zero uint16 and "HARD".
const Marker = "UEDY\x00\x00\x00\x00HARD"

const (
	// HeaderLen is the size of the fixed header fields.
	HeaderLen = 46
	// RecordLen is the size of one pen sample.
	RecordLen = 8
	// DefaultDataOffset is where devices start the sample stream.
	DefaultDataOffset = 0x40
	// DefaultRotation is what the G-Note 7100 writes.
	DefaultRotation = 3
	// padByte fills the gap between the header and DataOffset.
	padByte = 0xff
)

// Raw pen codes found in the first byte of a sample.
const (
	CodeBlack byte = 0xa1
	CodeBlue  byte = 0xa3
	CodeRed   byte = 0xa5
	CodeNone  byte = 0xe0
)

var (
	// ErrFormat is returned when the marker does not match.
	ErrFormat = errors.New("the header of the file doesn't match DNT file format")
	// ErrUnknownPen is returned for a pen code outside the known table.
	ErrUnknownPen = errors.New("unknown pen code")
	// ErrNoData is returned when building paths from a document without samples.
	ErrNoData = errors.New("no data to convert")
	// ErrRotation is returned for rotation values outside 0..3.
	ErrRotation = errors.New("rotation out of range")
	// ErrDataOffset is returned when encoding a header whose data offset
	// points inside the fixed header.
	ErrDataOffset = errors.New("data offset overlaps header")
)

// Header holds the document metadata stored before the sample stream.
type Header struct {
	VersionMajor uint16
	VersionMinor uint16
	// DPI is the device resolution in dots per inch.
	DPI uint16
	// XSize and YSize are the page extents in device units.
	XSize uint32
	YSize uint32
	// Rotation counts counter-clockwise quarter turns applied by the device.
	Rotation uint8
	Firmware [4]byte
	// DataOffset is the absolute byte position of the first sample.
	DataOffset uint16
}

// Sample is one pen position reading.
type Sample struct {
	Pen byte
	X   uint32
	Y   uint32
}

// Document is a decoded capture. Samples are kept in capture order.
type Document struct {
	Header
	Samples []Sample
}

// New returns an empty document with the device defaults.
func New() *Document {
	d := &Document{}
	d.VersionMajor = 1
	d.VersionMinor = 0
	d.DataOffset = DefaultDataOffset
	copy(d.Firmware[:], "1.2C")
	return d
}

// CopyHeader copies every header field from src.
func (d *Document) CopyHeader(src *Document) {
	d.Header = src.Header
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{Header: d.Header}
	if d.Samples != nil {
		c.Samples = make([]Sample, len(d.Samples))
		copy(c.Samples, d.Samples)
	}
	return c
}

// FirmwareString returns the firmware tag with trailing NULs removed.
func (h Header) FirmwareString() string {
	n := len(h.Firmware)
	for n > 0 && h.Firmware[n-1] == 0 {
		n--
	}
	return string(h.Firmware[:n])
}

func (d *Document) String() string {
	return fmt.Sprintf("Version:%2d.%d\nDPI:%d\nX size:%d\nY size:%d\nRotation:%d\nFirmware:%s\nData offset:0x%x\nSamples:%d",
		d.VersionMajor, d.VersionMinor,
		d.DPI,
		d.XSize, d.YSize,
		d.Rotation,
		d.FirmwareString(),
		d.DataOffset,
		len(d.Samples))
}

// Bounds returns the bounding box of the inked samples. ok is false when
// the document has no inked sample.
func (d *Document) Bounds() (min, max Point, ok bool) {
	for _, s := range d.Samples {
		if s.Pen == CodeNone {
			continue
		}
		if !ok {
			min = Point{s.X, s.Y}
			max = min
			ok = true
			continue
		}
		if s.X < min.X {
			min.X = s.X
		}
		if s.Y < min.Y {
			min.Y = s.Y
		}
		if s.X > max.X {
			max.X = s.X
		}
		if s.Y > max.Y {
			max.Y = s.Y
		}
	}
	return
}
