package eventlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// csvHeader is the fixed column order for CSV traces.
var csvHeader = []string{"session", "step", "kind", "cell", "digit", "depth", "timestamp"}

// WriteCSV writes a whole trace to a CSV file with a header row.
func WriteCSV(filename string, tr Trace) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return WriteCSVTo(f, tr)
}

// WriteCSVTo writes a trace to a writer in CSV form.
func WriteCSVTo(w io.Writer, tr Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range tr {
		record := []string{
			e.Session,
			strconv.Itoa(e.Step),
			e.Kind,
			strconv.Itoa(e.Cell),
			strconv.Itoa(e.Digit),
			strconv.Itoa(e.Depth),
			e.Timestamp.Format(time.RFC3339Nano),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads a trace from a CSV file produced by WriteCSV.
func ParseCSV(filename string) (Trace, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseCSVReader(f)
}

// ParseCSVReader reads a trace from a CSV stream. The first row must
// be the header written by WriteCSVTo.
func ParseCSVReader(r io.Reader) (Trace, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected header with %d columns", len(header))
	}

	var tr Trace
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		row++

		e, err := eventFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		tr = append(tr, e)
	}
	return tr, nil
}

func eventFromRecord(record []string) (Event, error) {
	if len(record) != len(csvHeader) {
		return Event{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	step, err := strconv.Atoi(record[1])
	if err != nil {
		return Event{}, fmt.Errorf("step: %w", err)
	}
	cell, err := strconv.Atoi(record[3])
	if err != nil {
		return Event{}, fmt.Errorf("cell: %w", err)
	}
	digit, err := strconv.Atoi(record[4])
	if err != nil {
		return Event{}, fmt.Errorf("digit: %w", err)
	}
	depth, err := strconv.Atoi(record[5])
	if err != nil {
		return Event{}, fmt.Errorf("depth: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, record[6])
	if err != nil {
		return Event{}, fmt.Errorf("timestamp: %w", err)
	}

	return Event{
		Session:   record[0],
		Step:      step,
		Kind:      record[2],
		Cell:      cell,
		Digit:     digit,
		Depth:     depth,
		Timestamp: ts,
	}, nil
}
