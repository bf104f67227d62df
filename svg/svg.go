// Package svg renders a stroke document as an SVG image made of polylines.
package svg

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/pkg/errors"
)

// ErrZeroDPI is returned when the page size can't be expressed in inches.
var ErrZeroDPI = errors.New("dpi is zero")

// Options controls the document wrapper around the polylines.
type Options struct {
	// Stylesheet is embedded verbatim as an xml-stylesheet href when set.
	Stylesheet string
}

const document = `<?xml version="1.0" standalone="no"?>
{{- if .Stylesheet}}
<?xml-stylesheet href="{{.Stylesheet}}" type="text/css"?>
{{- end}}
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.XSize}} {{.YSize}}" xmlns="http://www.w3.org/2000/svg" version="1.1">
{{- range .Lines}}
<polyline class="{{.Class}}" points="{{points .Points}}" />
{{- end}}
</svg>
`

var tmpl = template.Must(template.New("svg").Funcs(template.FuncMap{
	"points": Points,
}).Parse(document))

type page struct {
	Stylesheet string
	Width      string
	Height     string
	XSize      uint32
	YSize      uint32
	Lines      []dnt.Polyline
}

// Write renders doc to w. The document is used as is, rotate it first to
// get an upright page. Nothing is written to w on error.
func Write(w io.Writer, doc *dnt.Document, opts Options) error {
	if doc.DPI == 0 {
		return ErrZeroDPI
	}

	lines, err := dnt.Polylines(doc)
	if err != nil {
		return errors.Wrap(err, "can't build paths")
	}

	p := page{
		Stylesheet: opts.Stylesheet,
		Width:      inches(doc.XSize, doc.DPI),
		Height:     inches(doc.YSize, doc.DPI),
		XSize:      doc.XSize,
		YSize:      doc.YSize,
		Lines:      lines,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return errors.Wrap(err, "can't render svg")
	}
	_, err = buf.WriteTo(w)
	return err
}

// Render returns the SVG document as bytes.
func Render(doc *dnt.Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Points formats a point list as a polyline points attribute.
func Points(pts []dnt.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(p.X), 10))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(uint64(p.Y), 10))
	}
	return sb.String()
}

func inches(size uint32, dpi uint16) string {
	return strconv.FormatFloat(float64(size)/float64(dpi), 'f', -1, 64) + "in"
}
