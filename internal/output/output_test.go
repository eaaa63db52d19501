package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type record struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

func TestJSONWriter_SingleRecordIsBare(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(record{Name: "Cafe", Price: 3490}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "[") {
		t.Errorf("single record must not be wrapped in an array:\n%s", out)
	}
	var got record
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Name != "Cafe" || got.Price != 3490 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestJSONWriter_MultipleRecordsAreArray(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)
	w.Write(record{Name: "a"})
	w.Write(record{Name: "b"})
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestJSONLWriter_OneRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSONL)
	w.Write(record{Name: "a"})
	w.Write(record{Name: "b"})
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		var got record
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Errorf("line %q is not valid JSON: %v", line, err)
		}
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatYAML)
	w.Write(record{Name: "Cafe", Price: 3490})
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name: Cafe") {
		t.Errorf("unexpected YAML output:\n%s", buf.String())
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("xml")); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
