// Package annotations draws the ink of a stroke document into a PDF page.
package annotations

import (
	"fmt"
	"io"
	"os"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/log"
	"github.com/pkg/errors"
	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"
)

// PointsPerInch is the PDF user space unit.
const PointsPerInch = 72

// DefaultLineWidth is the stroke width in points.
const DefaultLineWidth = 0.6

type PdfGenerator struct {
	doc     *dnt.Document
	options PdfGeneratorOptions
}

type PdfGeneratorOptions struct {
	AddPageNumbers bool
	LineWidth      float64
}

type rgb struct {
	r, g, b float64
}

var penColors = map[dnt.Pen]rgb{
	dnt.PenBlack: {0, 0, 0},
	dnt.PenBlue:  {0, 0, 1},
	dnt.PenRed:   {1, 0, 0},
}

func CreatePdfGenerator(doc *dnt.Document, options PdfGeneratorOptions) *PdfGenerator {
	if options.LineWidth <= 0 {
		options.LineWidth = DefaultLineWidth
	}
	return &PdfGenerator{doc: doc, options: options}
}

// pageSize returns the page extents in points and the device to point ratio.
func (p *PdfGenerator) pageSize() (creator.PageSize, float64, error) {
	if p.doc.DPI == 0 {
		return creator.PageSize{}, 0, errors.New("can't size page: dpi is zero")
	}
	ratio := float64(PointsPerInch) / float64(p.doc.DPI)
	return creator.PageSize{float64(p.doc.XSize) * ratio, float64(p.doc.YSize) * ratio}, ratio, nil
}

func normalized(pt dnt.Point, ratio, height float64) (float64, float64) {
	return float64(pt.X) * ratio, height - float64(pt.Y)*ratio
}

// Generate writes a one page PDF to w.
func (p *PdfGenerator) Generate(w io.Writer) error {
	size, ratio, err := p.pageSize()
	if err != nil {
		return err
	}

	c := creator.New()
	c.SetPageSize(size)

	if p.options.AddPageNumbers {
		c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			para := c.NewParagraph(fmt.Sprintf("%d", args.PageNum))
			para.SetFontSize(8)
			para.SetPos(block.Width()-20, block.Height()-10)
			block.Draw(para)
		})
	}

	page := c.NewPage()
	height := size[1]

	contentCreator := contentstream.NewContentCreator()
	strokes := 0
	s := p.doc.Paths()
	for s.Next() {
		line := s.Polyline()
		if len(line.Points) == 0 {
			continue
		}
		col := penColors[line.Pen]

		path := draw.NewPath()
		for _, pt := range line.Points {
			x, y := normalized(pt, ratio, height)
			path = path.AppendPoint(draw.NewPoint(x, y))
		}
		// a single sample still leaves a dot
		if len(line.Points) == 1 {
			x, y := normalized(line.Points[0], ratio, height)
			path = path.AppendPoint(draw.NewPoint(x+p.options.LineWidth/2, y))
		}

		contentCreator.Add_q()
		contentCreator.Add_w(p.options.LineWidth)
		contentCreator.Add_RG(col.r, col.g, col.b)
		draw.DrawPathWithCreator(path, contentCreator)
		contentCreator.Add_S()
		contentCreator.Add_Q()
		strokes++
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "can't build paths")
	}
	log.Trace.Printf("pdf: %d strokes on a %.1fx%.1f page", strokes, size[0], size[1])

	if err := page.AppendContentStream(string(contentCreator.Operations().Bytes())); err != nil {
		return err
	}

	return c.Write(w)
}

// WriteFile generates the PDF into outputFilePath.
func (p *PdfGenerator) WriteFile(outputFilePath string) error {
	f, err := os.Create(outputFilePath)
	if err != nil {
		return err
	}

	if err := p.Generate(f); err != nil {
		f.Close()
		os.Remove(outputFilePath)
		return err
	}
	return f.Close()
}
