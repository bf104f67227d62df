package dnt

import "github.com/pkg/errors"

// Rotate turns the samples upright in place and records the rotation as
// applied by setting it to 0. Calling it again is a no-op. The document is
// left untouched when the rotation is out of range.
func (d *Document) Rotate() error {
	if d.Rotation > 3 {
		return errors.Wrapf(ErrRotation, "rotation %d", d.Rotation)
	}
	if d.Rotation == 0 {
		return nil
	}

	xSize, ySize := int64(d.XSize), int64(d.YSize)
	for i := range d.Samples {
		s := &d.Samples[i]
		x, y := int64(s.X), int64(s.Y)
		switch d.Rotation {
		case 1:
			s.X = clamp(ySize - y)
			s.Y = clamp(xSize - x)
		case 2:
			s.Y = clamp(ySize - y)
		case 3:
			s.X = clamp(ySize - y)
			s.Y = uint32(x)
		}
	}

	if d.Rotation%2 == 1 {
		d.XSize, d.YSize = d.YSize, d.XSize
	}
	d.Rotation = 0

	return nil
}

// Normalized returns an upright copy of the document, leaving d unchanged.
func (d *Document) Normalized() (*Document, error) {
	c := d.Clone()
	if err := c.Rotate(); err != nil {
		return nil, err
	}
	return c, nil
}

// clamp pins samples that fall outside the page to its edge.
func clamp(v int64) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
