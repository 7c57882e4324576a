package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONLWriter streams events to a writer, one JSON object per line.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter wraps w for JSONL event output.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// Write appends one event line.
func (w *JSONLWriter) Write(e Event) error {
	return w.enc.Encode(e)
}

// WriteJSONL writes a whole trace to a JSONL file.
func WriteJSONL(filename string, tr Trace) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := NewJSONLWriter(bw)
	for _, e := range tr {
		if err := w.Write(e); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	return bw.Flush()
}

// ParseJSONL reads a trace from a JSONL file.
func ParseJSONL(filename string) (Trace, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseJSONLReader(f)
}

// ParseJSONLReader reads a trace from a JSONL stream. Empty lines are
// skipped; a malformed line is an error naming its line number.
func ParseJSONLReader(r io.Reader) (Trace, error) {
	var tr Trace
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		var e Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		tr = append(tr, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return tr, nil
}
