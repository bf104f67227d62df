package dnt

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWith(samples ...Sample) *Document {
	d := New()
	d.Samples = samples
	return d
}

func TestPolylinesGrouping(t *testing.T) {
	d := docWith(
		Sample{CodeBlack, 0, 0},
		Sample{CodeBlack, 1, 1},
		Sample{CodeNone, 2, 2},
		Sample{CodeRed, 3, 3},
	)

	lines, err := Polylines(d)
	require.NoError(t, err)
	// the trailing red run is only emitted by the end of stream flush
	assert.Equal(t, []Polyline{
		{Pen: PenBlack, Points: []Point{{0, 0}, {1, 1}}},
		{Pen: PenRed, Points: []Point{{3, 3}}},
	}, lines)
	assert.Equal(t, "pen-black", lines[0].Class())
	assert.Equal(t, "pen-red", lines[1].Class())
}

func TestPolylinesPenUpSplitsRuns(t *testing.T) {
	d := docWith(
		Sample{CodeBlack, 0, 0},
		Sample{CodeBlack, 1, 1},
		Sample{CodeNone, 2, 2},
		Sample{CodeBlack, 3, 3},
		Sample{CodeBlack, 4, 4},
		Sample{CodeNone, 5, 5},
	)

	lines, err := Polylines(d)
	require.NoError(t, err)
	assert.Equal(t, []Polyline{
		{Pen: PenBlack, Points: []Point{{0, 0}, {1, 1}}},
		{Pen: PenBlack, Points: []Point{{3, 3}, {4, 4}}},
	}, lines)
}

func TestPolylinesPenChange(t *testing.T) {
	d := docWith(
		Sample{CodeNone, 9, 9},
		Sample{CodeBlue, 0, 0},
		Sample{CodeBlack, 1, 1},
		Sample{CodeBlack, 2, 2},
	)

	lines, err := Polylines(d)
	require.NoError(t, err)
	assert.Equal(t, []Polyline{
		{Pen: PenBlue, Points: []Point{{0, 0}}},
		{Pen: PenBlack, Points: []Point{{1, 1}, {2, 2}}},
	}, lines)
}

func TestPolylinesOnlyPenUp(t *testing.T) {
	lines, err := Polylines(docWith(Sample{CodeNone, 1, 1}, Sample{CodeNone, 2, 2}))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPolylinesUnknownPen(t *testing.T) {
	_, err := Polylines(docWith(Sample{CodeBlack, 0, 0}, Sample{0x00, 1, 1}))
	assert.True(t, errors.Is(err, ErrUnknownPen))
}

func TestPolylinesEmpty(t *testing.T) {
	_, err := Polylines(New())
	assert.True(t, errors.Is(err, ErrNoData))

	s := New().Paths()
	assert.False(t, s.Next())
	assert.Equal(t, ErrNoData, s.Err())
}

func TestPathsRestartable(t *testing.T) {
	d := testDocument()

	first, err := Polylines(d)
	require.NoError(t, err)
	second, err := Polylines(d)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestPenTable(t *testing.T) {
	for _, pen := range []Pen{PenNone, PenBlack, PenBlue, PenRed} {
		got, err := PenFromCode(pen.Code())
		require.NoError(t, err)
		assert.Equal(t, pen, got)
	}
	assert.Equal(t, "", PenNone.Class())
	assert.Equal(t, "pen-blue", PenBlue.Class())
	assert.Equal(t, "red", PenRed.String())
}
