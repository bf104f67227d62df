package dnt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	d := New()
	d.DPI = 300
	d.XSize = 2550
	d.YSize = 3300
	d.Rotation = 3
	d.Samples = []Sample{
		{Pen: CodeBlack, X: 0, Y: 0},
		{Pen: CodeBlack, X: 127, Y: 128},
		{Pen: CodeNone, X: 1000, Y: 2000},
		{Pen: CodeBlue, X: 16383, Y: 16383},
		{Pen: CodeRed, X: 8191, Y: 4097},
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	d := testDocument()

	data, err := d.MarshalBinary()
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, d.Header, got.Header)
	assert.Equal(t, d.Samples, got.Samples)
}

func TestHeaderFields(t *testing.T) {
	d := testDocument()

	data, err := d.MarshalBinary()
	require.NoError(t, err)

	require.Len(t, data, DefaultDataOffset+len(d.Samples)*RecordLen)
	assert.Equal(t, Marker, string(data[:12]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[12:14]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[14:16]))
	assert.Equal(t, uint16(300), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(2550), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(3300), binary.LittleEndian.Uint32(data[28:32]))
	assert.Equal(t, byte(3), data[34])
	assert.Equal(t, "1.2C", string(data[36:40]))
	assert.Equal(t, uint16(0x40), binary.LittleEndian.Uint16(data[44:46]))
	assert.Equal(t, bytes.Repeat([]byte{0xff}, DefaultDataOffset-HeaderLen), data[HeaderLen:DefaultDataOffset])

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(300), got.DPI)
	assert.Equal(t, uint32(2550), got.XSize)
	assert.Equal(t, uint32(3300), got.YSize)
	assert.Equal(t, uint8(3), got.Rotation)
	assert.Equal(t, uint16(0x40), got.DataOffset)
	assert.Equal(t, "1.2C", got.FirmwareString())
}

func TestRecordPacking(t *testing.T) {
	rec := packRecord(Sample{Pen: CodeRed, X: 8191, Y: 4097})
	assert.Equal(t, [RecordLen]byte{0xa5, 0x7f, 0x3f, 0x01, 0x20, 0, 0, 0}, rec)

	assert.Equal(t, Sample{Pen: CodeRed, X: 8191, Y: 4097}, decodeRecord(rec[:]))
}

func TestDecodeXYTop(t *testing.T) {
	// x takes the low bits scaled by 16384, y the masked bits unshifted
	s := decodeRecord([]byte{CodeBlack, 1, 0, 2, 0, 0, 0x05, 0})
	assert.Equal(t, uint32(1+16384), s.X)
	assert.Equal(t, uint32(2+16384*4), s.Y)
}

func TestDecodedRange(t *testing.T) {
	d := New()
	for x := uint32(0); x < 16384; x += 97 {
		d.Samples = append(d.Samples, Sample{Pen: CodeBlue, X: x, Y: 16383 - x})
	}
	data, err := d.MarshalBinary()
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, got.Samples, len(d.Samples))
	for _, s := range got.Samples {
		assert.True(t, s.X < 16384)
		assert.True(t, s.Y < 16384)
	}
}

func TestBadMarker(t *testing.T) {
	data, err := testDocument().MarshalBinary()
	require.NoError(t, err)
	data[0] = 'X'

	_, err = Unmarshal(data)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = Unmarshal([]byte("UEDY"))
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestTruncatedHeader(t *testing.T) {
	data, err := testDocument().MarshalBinary()
	require.NoError(t, err)

	_, err = Unmarshal(data[:30])
	assert.Error(t, err)
}

func TestPartialTrailingRecord(t *testing.T) {
	d := testDocument()
	data, err := d.MarshalBinary()
	require.NoError(t, err)

	got, err := Read(bytes.NewReader(append(data, 0xa1, 1, 2, 3, 4)))
	require.NoError(t, err)
	assert.Equal(t, d.Samples, got.Samples)
}

func TestPaddingIsSkipped(t *testing.T) {
	d := testDocument()
	d.DataOffset = 0x80
	data, err := d.MarshalBinary()
	require.NoError(t, err)
	for i := HeaderLen; i < 0x80; i++ {
		data[i] = byte(i)
	}

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, d.Samples, got.Samples)
}

func TestDataOffsetPastEnd(t *testing.T) {
	d := New()
	d.DataOffset = 0x200
	data, err := d.MarshalBinary()
	require.NoError(t, err)

	got, err := Unmarshal(data[:HeaderLen])
	require.NoError(t, err)
	assert.Empty(t, got.Samples)
}

func TestDataOffsetInsideHeader(t *testing.T) {
	d := New()
	d.DataOffset = 20

	_, err := d.MarshalBinary()
	assert.True(t, errors.Is(err, ErrDataOffset))

	var buf bytes.Buffer
	_, err = d.WriteTo(&buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewDefaults(t *testing.T) {
	d := New()
	assert.Equal(t, uint16(1), d.VersionMajor)
	assert.Equal(t, uint16(0), d.VersionMinor)
	assert.Zero(t, d.XSize)
	assert.Zero(t, d.YSize)
	assert.Empty(t, d.Samples)

	c := New()
	c.CopyHeader(testDocument())
	assert.Equal(t, testDocument().Header, c.Header)
	assert.Empty(t, c.Samples)
}

func TestBounds(t *testing.T) {
	_, _, ok := New().Bounds()
	assert.False(t, ok)

	min, max, ok := testDocument().Bounds()
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{16383, 16383}, max)
}

func TestString(t *testing.T) {
	s := testDocument().String()
	assert.Contains(t, s, "DPI:300")
	assert.Contains(t, s, "Firmware:1.2C")
	assert.Contains(t, s, "Data offset:0x40")
}
