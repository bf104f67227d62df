package archive

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/svg"
	"github.com/pkg/errors"
)

// Build creates a bundle for doc with one rendered page.
func Build(doc *dnt.Document, opts svg.Options) (*Zip, error) {
	page, err := svg.Render(doc, opts)
	if err != nil {
		return nil, err
	}

	lines, err := dnt.Polylines(doc)
	if err != nil {
		return nil, err
	}
	pens := make(map[string]int)
	for _, l := range lines {
		pens[l.Pen.String()]++
	}

	z := NewZip()
	z.Document = doc
	z.Pages = [][]byte{page}
	z.Content = Content{
		FileType:    "dnt",
		Version:     fmt.Sprintf("%d.%d", doc.VersionMajor, doc.VersionMinor),
		DPI:         doc.DPI,
		XSize:       doc.XSize,
		YSize:       doc.YSize,
		Rotation:    doc.Rotation,
		Firmware:    doc.FirmwareString(),
		DataOffset:  doc.DataOffset,
		PageCount:   len(z.Pages),
		SampleCount: len(doc.Samples),
		StrokeCount: len(lines),
		Pens:        pens,
		Stylesheet:  opts.Stylesheet,
	}
	return z, nil
}

// Write serializes the bundle as a zip file.
func (z *Zip) Write(w io.Writer) error {
	if z.Document == nil {
		return errors.New("bundle has no document")
	}
	data, err := z.Document.MarshalBinary()
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(z.Content, "", "    ")
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	if err := writeEntry(zw, z.UUID+contentExt, content); err != nil {
		return err
	}
	if err := writeEntry(zw, z.UUID+dntExt, data); err != nil {
		return err
	}
	for i, page := range z.Pages {
		name := fmt.Sprintf("%s/%d%s", z.UUID, i, svgExt)
		if err := writeEntry(zw, name, page); err != nil {
			return err
		}
	}

	return zw.Close()
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return errors.Wrapf(err, "can't create %s", name)
	}
	_, err = f.Write(data)
	return err
}
