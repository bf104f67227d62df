// Package archive bundles a stroke document with its rendered pages in a
// single zip file.
//
// Layout:
//
//	<id>.content     JSON metadata
//	<id>.dnt         the document re-encoded
//	<id>/<n>.svg     rendered pages
package archive

import (
	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/google/uuid"
)

const (
	contentExt = ".content"
	dntExt     = ".dnt"
	svgExt     = ".svg"
)

// Content is the metadata stored in the .content entry.
type Content struct {
	FileType    string         `json:"fileType"`
	Version     string         `json:"version"`
	DPI         uint16         `json:"dpi"`
	XSize       uint32         `json:"xSize"`
	YSize       uint32         `json:"ySize"`
	Rotation    uint8          `json:"rotation"`
	Firmware    string         `json:"firmware"`
	DataOffset  uint16         `json:"dataOffset"`
	PageCount   int            `json:"pageCount"`
	SampleCount int            `json:"sampleCount"`
	StrokeCount int            `json:"strokeCount"`
	Pens        map[string]int `json:"pens"`
	Stylesheet  string         `json:"stylesheet,omitempty"`
}

// Zip is an in-memory bundle.
type Zip struct {
	UUID     string
	Content  Content
	Document *dnt.Document
	// Pages holds one SVG document per page.
	Pages [][]byte
}

// NewZip returns an empty bundle with a fresh id.
func NewZip() *Zip {
	return &Zip{
		UUID:    uuid.New().String(),
		Content: Content{FileType: "dnt"},
	}
}
