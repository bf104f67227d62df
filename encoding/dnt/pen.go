package dnt

import "github.com/pkg/errors"

// Pen is the ink state of a sample.
type Pen int

const (
	PenNone Pen = iota
	PenBlack
	PenBlue
	PenRed
)

// PenFromCode maps a raw pen code to a Pen.
func PenFromCode(code byte) (Pen, error) {
	switch code {
	case CodeBlack:
		return PenBlack, nil
	case CodeBlue:
		return PenBlue, nil
	case CodeRed:
		return PenRed, nil
	case CodeNone:
		return PenNone, nil
	}
	return PenNone, errors.Wrapf(ErrUnknownPen, "0x%02x", code)
}

// Code returns the raw pen code written to files.
func (p Pen) Code() byte {
	switch p {
	case PenBlack:
		return CodeBlack
	case PenBlue:
		return CodeBlue
	case PenRed:
		return CodeRed
	}
	return CodeNone
}

func (p Pen) String() string {
	switch p {
	case PenBlack:
		return "black"
	case PenBlue:
		return "blue"
	case PenRed:
		return "red"
	}
	return "none"
}

// Class is the style class used for polylines drawn with the pen.
// PenNone never produces a polyline and has no class.
func (p Pen) Class() string {
	switch p {
	case PenBlack:
		return "pen-black"
	case PenBlue:
		return "pen-blue"
	case PenRed:
		return "pen-red"
	}
	return ""
}
