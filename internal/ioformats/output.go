package ioformats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"freetoolz-blueprint/internal/models"
)

// FileMode is the permission every file written by WriteFile ends up with.
const FileMode os.FileMode = 0o644

// WriteJSON writes v as a single two-space indented JSON document with no
// trailing newline, byte for byte what JSON.stringify(v, null, 2) produces.
func WriteJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// WriteNDJSON writes any JSON-marshalable items as NDJSON to w.
func WriteNDJSON(w io.Writer, items []any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords writes records in the given format ("json" or "ndjson").
func WriteRecords(w io.Writer, records []models.ContentRecord, format string) error {
	switch format {
	case "", "json":
		return WriteJSON(w, records)
	case "ndjson":
		items := make([]any, len(records))
		for i := range records {
			items[i] = records[i]
		}
		return WriteNDJSON(w, items)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile replaces path with whatever write produces, creating parent
// directories as needed. The file is written to a temporary name first so a
// failed run never leaves a half-written document behind. It returns the
// number of bytes written.
func WriteFile(path string, write func(io.Writer) error) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	// CreateTemp uses 0600; published files must be readable by the web server.
	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		return 0, err
	}

	cw := &countingWriter{w: tmp}
	if err := write(cw); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// ReadRecords loads a blueprint document written by WriteRecords.
func ReadRecords(path string) ([]models.ContentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []models.ContentRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	// fall back to NDJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	records = nil
	for dec.More() {
		var r models.ContentRecord
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode blueprint %s: %w", path, err)
		}
		records = append(records, r)
	}
	return records, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
