/*
Package quantizelabels aligns the timestamps of one timed-label file to
the nearest timestamps of another.

Labels are simple line-oriented records, either Audacity-style
(start, end, text) or one bare timestamp per line. The start times of
the reference file form a fixed grid; every time value in the target
file is replaced with the grid value closest to it. Start and end times
are snapped independently against the same grid, and equidistant ties
resolve to the smaller grid value. Record count, order and text are
never changed.

# Basic usage

	q := quantizelabels.New()
	report, err := q.QuantizeFile("reference.txt", "target.txt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("moved %d of %d records\n", report.Adjusted, report.Records)

By default the quantized labels go to stdout. WithInPlace(true) writes
back over the target file instead, atomically. In-memory documents can
be transformed directly with Quantize.

# Filtering

A filter expression restricts which records are snapped; the rest pass
through untouched:

	q := quantizelabels.New(
		quantizelabels.WithFilter("duration > 0.5 && text != ''"),
	)

Expressions see each record as the variables start, end, duration, text
and index.
*/
package quantizelabels
