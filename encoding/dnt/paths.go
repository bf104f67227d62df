package dnt

import "github.com/pkg/errors"

// Point is a page position in device units.
type Point struct {
	X uint32
	Y uint32
}

// Polyline is one stroke: consecutive samples drawn with the same pen.
type Polyline struct {
	Pen    Pen
	Points []Point
}

// Class returns the style class of the stroke.
func (p Polyline) Class() string {
	return p.Pen.Class()
}

// PathScanner walks the samples of a document and yields one Polyline per
// run of inked samples sharing a pen. Pen-up samples split runs.
//
//	s := doc.Paths()
//	for s.Next() {
//		line := s.Polyline()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
//
// Calling Paths again starts a fresh walk.
type PathScanner struct {
	samples []Sample
	pos     int
	pen     Pen
	acc     []Point
	line    Polyline
	err     error
}

// Paths returns a scanner over the strokes of d.
func (d *Document) Paths() *PathScanner {
	s := &PathScanner{samples: d.Samples}
	if len(d.Samples) == 0 {
		s.err = ErrNoData
	}
	return s
}

// Next advances to the next polyline. It returns false at the end of the
// samples or on the first error.
func (s *PathScanner) Next() bool {
	if s.err != nil {
		return false
	}

	for s.pos < len(s.samples) {
		sample := s.samples[s.pos]
		s.pos++

		pen, err := PenFromCode(sample.Pen)
		if err != nil {
			s.err = errors.Wrapf(err, "sample %d", s.pos-1)
			return false
		}
		pt := Point{sample.X, sample.Y}

		if pen == s.pen {
			if pen != PenNone {
				s.acc = append(s.acc, pt)
			}
			continue
		}

		flushed := s.pen != PenNone
		if flushed {
			s.line = Polyline{Pen: s.pen, Points: s.acc}
			s.acc = nil
		}
		if pen != PenNone {
			s.acc = []Point{pt}
		}
		s.pen = pen

		if flushed {
			return true
		}
	}

	// the capture may end with the pen down
	if s.pen != PenNone {
		s.line = Polyline{Pen: s.pen, Points: s.acc}
		s.pen = PenNone
		s.acc = nil
		return true
	}

	return false
}

// Polyline returns the stroke found by the last call to Next.
func (s *PathScanner) Polyline() Polyline {
	return s.line
}

// Err returns the error that stopped the scan, if any.
func (s *PathScanner) Err() error {
	return s.err
}

// Polylines collects every stroke of d.
func Polylines(d *Document) ([]Polyline, error) {
	var lines []Polyline
	s := d.Paths()
	for s.Next() {
		lines = append(lines, s.Polyline())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
