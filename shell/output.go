package shell

import (
	"encoding/json"

	"github.com/abiosoft/ishell"
	"github.com/gnote/dnttools/encoding/dnt"
)

type DocumentJSON struct {
	Path        string         `json:"path"`
	Version     [2]uint16      `json:"version"`
	DPI         uint16         `json:"dpi"`
	XSize       uint32         `json:"xSize"`
	YSize       uint32         `json:"ySize"`
	Rotation    uint8          `json:"rotation"`
	Firmware    string         `json:"firmware"`
	DataOffset  uint16         `json:"dataOffset"`
	Samples     int            `json:"samples"`
	Strokes     int            `json:"strokes"`
	Pens        map[string]int `json:"pens"`
	Bounds      *[4]uint32     `json:"bounds,omitempty"`
	StrokeError string         `json:"strokeError,omitempty"`
}

// DocumentToJSON summarizes a document. Path building errors are reported
// in the summary rather than failing it.
func DocumentToJSON(path string, doc *dnt.Document) DocumentJSON {
	j := DocumentJSON{
		Path:       path,
		Version:    [2]uint16{doc.VersionMajor, doc.VersionMinor},
		DPI:        doc.DPI,
		XSize:      doc.XSize,
		YSize:      doc.YSize,
		Rotation:   doc.Rotation,
		Firmware:   doc.FirmwareString(),
		DataOffset: doc.DataOffset,
		Samples:    len(doc.Samples),
		Pens:       make(map[string]int),
	}

	if min, max, ok := doc.Bounds(); ok {
		j.Bounds = &[4]uint32{min.X, min.Y, max.X, max.Y}
	}

	lines, err := dnt.Polylines(doc)
	if err != nil {
		j.StrokeError = err.Error()
		return j
	}
	j.Strokes = len(lines)
	for _, l := range lines {
		j.Pens[l.Pen.String()]++
	}
	return j
}

func displayJSON(c *ishell.Context, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	c.Println(string(output))
	return nil
}
