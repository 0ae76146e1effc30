package label

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Write serializes doc to w, each record in the shape it was read in.
// Times are written fixed-point with the given number of decimal
// places; precision < 0 selects DefaultPrecision.
func Write(w io.Writer, doc *Document, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	bw := bufio.NewWriter(w)
	for _, l := range doc.Labels {
		var err error
		switch l.Form {
		case FormTime:
			_, err = fmt.Fprintf(bw, "%s\n", formatTime(l.Start, precision))
		default:
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\n",
				formatTime(l.Start, precision), formatTime(l.End, precision), l.Text)
		}
		if err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	return nil
}

// WriteFile writes doc to path. The document is staged to a temporary
// file in the destination directory and renamed into place only after a
// fully successful write, so an existing file is never left truncated.
func WriteFile(path string, doc *Document, precision int) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".quantize-labels-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// CreateTemp uses mode 0600; keep the destination's mode when
	// overwriting in place.
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := Write(tmp, doc, precision); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func formatTime(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
