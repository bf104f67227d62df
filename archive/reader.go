package archive

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"path"
	"strings"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/pkg/errors"
)

// Read loads a bundle written by Write.
func (z *Zip) Read(r io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return errors.Wrap(err, "can't open as zip")
	}

	z.UUID = ""
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
		if path.Dir(f.Name) == "." && strings.HasSuffix(f.Name, contentExt) {
			z.UUID = strings.TrimSuffix(f.Name, contentExt)
		}
	}
	if z.UUID == "" {
		return errors.New("no .content file found in archive")
	}

	content, err := readEntry(files, z.UUID+contentExt)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, &z.Content); err != nil {
		return errors.Wrap(err, "can't parse content file")
	}

	data, err := readEntry(files, z.UUID+dntExt)
	if err != nil {
		return err
	}
	if z.Document, err = dnt.Unmarshal(data); err != nil {
		return err
	}

	z.Pages = nil
	for i := 0; i < z.Content.PageCount; i++ {
		page, err := readEntry(files, fmt.Sprintf("%s/%d%s", z.UUID, i, svgExt))
		if err != nil {
			return err
		}
		z.Pages = append(z.Pages, page)
	}

	return nil
}

func readEntry(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, errors.Errorf("missing %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "can't open %s", name)
	}
	defer rc.Close()

	return ioutil.ReadAll(rc)
}
