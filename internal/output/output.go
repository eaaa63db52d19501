// Package output serializes extracted product records.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer handles output serialization. Records are buffered (except
// JSONL) and emitted on Flush; a single record is written bare rather
// than as a one-element array.
type Writer interface {
	// Write outputs a single record.
	Write(data any) error

	// Flush ensures all data is written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{w: bufio.NewWriter(w)}, nil
	case FormatJSONL:
		return &jsonlWriter{w: bufio.NewWriter(w)}, nil
	case FormatYAML:
		return &yamlWriter{w: bufio.NewWriter(w)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonWriter writes pretty-printed JSON.
type jsonWriter struct {
	w     *bufio.Writer
	items []any
}

func (w *jsonWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

func (w *jsonWriter) Flush() error {
	var payload any = w.items
	if len(w.items) == 1 {
		payload = w.items[0]
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

// jsonlWriter writes newline-delimited JSON, one record per line,
// flushed as it goes.
type jsonlWriter struct {
	w *bufio.Writer
}

func (w *jsonlWriter) Write(data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) Flush() error {
	return w.w.Flush()
}

// yamlWriter writes YAML.
type yamlWriter struct {
	w     *bufio.Writer
	items []any
}

func (w *yamlWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

func (w *yamlWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	var err error
	if len(w.items) == 1 {
		err = encoder.Encode(w.items[0])
	} else {
		err = encoder.Encode(w.items)
	}
	if err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
