package convert

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/log"
	"github.com/pkg/errors"
)

// File converts one input file into every requested format and returns
// the paths written.
func File(ctx context.Context, input string, opts Options) ([]string, error) {
	doc, err := dnt.Open(input)
	if err != nil {
		return nil, err
	}
	log.Trace.Printf("%s: %d samples, rotation %d", input, len(doc.Samples), doc.Rotation)

	if opts.Normalize {
		if err := doc.Rotate(); err != nil {
			return nil, errors.Wrapf(err, "can't rotate %s", input)
		}
	}

	var outputs []string
	for _, f := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return outputs, err
		}

		name := OutputName(input, 0, string(f))
		if opts.OutputDir != "" {
			name = filepath.Join(opts.OutputDir, filepath.Base(name))
		}

		err := WriteFile(name, func(w io.Writer) error {
			return Render(w, doc, f, opts)
		})
		if err != nil {
			return outputs, errors.Wrapf(err, "can't write %s", name)
		}
		outputs = append(outputs, name)
	}

	return outputs, nil
}

// WriteFile writes into a temporary file next to name and renames it on
// success, so a failed conversion never leaves a truncated output.
func WriteFile(name string, fn func(w io.Writer) error) error {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := ioutil.TempFile(dir, "."+base+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, name)
}
