package label

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/bwagner/quantize-labels/logger"
)

// Read parses a label file from r. Lines that cannot be parsed are
// skipped with a warning; blank lines are ignored silently. The
// returned document may be empty, which is not an error here (an empty
// reference set is rejected later, when a snap grid is built from it).
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l, err := parseLine(line)
		if err != nil {
			perr := &ParseError{Line: lineNo, Input: line, Err: err}
			logger.Warn("skipping malformed label: %v", perr)
			continue
		}
		doc.Labels = append(doc.Labels, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return doc, nil
}

// ReadFile reads a label file from path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// parseLine parses one non-blank line into a label. Tab-separated lines
// keep their text field verbatim, including embedded whitespace; lines
// without tabs fall back to splitting on arbitrary whitespace.
func parseLine(line string) (Label, error) {
	var fields []string
	if strings.Contains(line, "\t") {
		fields = strings.SplitN(line, "\t", 3)
	} else {
		parts := strings.Fields(line)
		if len(parts) > 3 {
			fields = []string{parts[0], parts[1], strings.Join(parts[2:], " ")}
		} else {
			fields = parts
		}
	}

	if len(fields) == 1 {
		t, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return Label{}, err
		}
		return Label{Start: t, End: t, Form: FormTime}, nil
	}

	start, err := cast.ToFloat64E(strings.TrimSpace(fields[0]))
	if err != nil {
		return Label{}, fmt.Errorf("start time: %w", err)
	}
	end, err := cast.ToFloat64E(strings.TrimSpace(fields[1]))
	if err != nil {
		return Label{}, fmt.Errorf("end time: %w", err)
	}
	text := ""
	if len(fields) > 2 {
		text = fields[2]
	}
	return Label{Start: start, End: end, Text: text, Form: FormSpan}, nil
}
