package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *dnt.Document {
	d := dnt.New()
	d.DPI = 100
	d.XSize = 850
	d.YSize = 1100
	d.Samples = []dnt.Sample{
		{Pen: dnt.CodeBlack, X: 0, Y: 0},
		{Pen: dnt.CodeBlack, X: 1, Y: 1},
		{Pen: dnt.CodeNone, X: 2, Y: 2},
		{Pen: dnt.CodeRed, X: 3, Y: 3},
	}
	return d
}

func TestWrite(t *testing.T) {
	out, err := Render(sampleDoc(), Options{})
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" standalone="no"?>`+"\n<!DOCTYPE svg"))
	assert.Contains(t, s, `width="8.5in" height="11in" viewBox="0 0 850 1100"`)
	assert.Contains(t, s, `<polyline class="pen-black" points="0,0 1,1" />`)
	assert.Contains(t, s, `<polyline class="pen-red" points="3,3" />`)
	assert.Equal(t, 2, strings.Count(s, "<polyline"))
	assert.NotContains(t, s, "xml-stylesheet")
	assert.True(t, strings.HasSuffix(s, "</svg>\n"))
}

func TestWriteStylesheet(t *testing.T) {
	out, err := Render(sampleDoc(), Options{Stylesheet: "../mystyle.css"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml-stylesheet href="../mystyle.css" type="text/css"?>`)
}

func TestWriteRotated(t *testing.T) {
	d := sampleDoc()
	d.Rotation = 3
	require.NoError(t, d.Rotate())

	out, err := Render(d, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `width="11in" height="8.5in" viewBox="0 0 1100 850"`)
	assert.Contains(t, string(out), `points="1100,0 1099,1"`)
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer

	d := sampleDoc()
	d.DPI = 0
	assert.Equal(t, ErrZeroDPI, Write(&buf, d, Options{}))

	d = sampleDoc()
	d.Samples = nil
	err := Write(&buf, d, Options{})
	assert.True(t, errors.Is(err, dnt.ErrNoData))

	d = sampleDoc()
	d.Samples = append(d.Samples, dnt.Sample{Pen: 0x42})
	err = Write(&buf, d, Options{})
	assert.True(t, errors.Is(err, dnt.ErrUnknownPen))

	assert.Zero(t, buf.Len())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, "", Points(nil))
	assert.Equal(t, "1,2 30,40", Points([]dnt.Point{{X: 1, Y: 2}, {X: 30, Y: 40}}))
}
