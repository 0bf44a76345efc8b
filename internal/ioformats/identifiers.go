package ioformats

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"freetoolz-blueprint/internal/naming"
)

// identifierColumns are the CSV headers / NDJSON keys accepted for a tool identifier.
var identifierColumns = []string{"tool", "identifier", "name"}

// ListTools returns the base names (extension stripped) of the regular files
// in dir with the given extension, in naming.SortIdentifiers order.
// Subdirectories are not walked.
func ListTools(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext != "" && !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		out = append(out, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	naming.SortIdentifiers(out)
	return out, nil
}

// ReadIdentifiers reads identifiers from a CSV (expects a "tool" or
// "identifier" header) or NDJSON file. If ext cannot be determined, tries CSV
// first then NDJSON.
func ReadIdentifiers(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return readCSV(path)
	case ".ndjson", ".jsonl":
		return readNDJSON(path)
	default:
		if ids, err := readCSV(path); err == nil && len(ids) > 0 {
			return ids, nil
		}
		return readNDJSON(path)
	}
}

func readCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv")
	}
	col := -1
	for i, h := range rows[0] {
		if isIdentifierColumn(h) {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("csv must contain one of the header columns %v", identifierColumns)
	}
	var out []string
	for _, row := range rows[1:] {
		if col < len(row) {
			id := strings.TrimSpace(row[col])
			if id != "" {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func readNDJSON(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// allow raw string, JSON string or {"tool": "..."}
		if strings.HasPrefix(line, "{") {
			var obj map[string]any
			if err := json.Unmarshal([]byte(line), &obj); err == nil {
				if id, ok := identifierField(obj); ok {
					out = append(out, id)
					continue
				}
			}
		}
		if strings.HasPrefix(line, `"`) {
			var s string
			if err := json.Unmarshal([]byte(line), &s); err == nil {
				out = append(out, s)
				continue
			}
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("no identifiers found in ndjson")
	}
	return out, nil
}

func isIdentifierColumn(h string) bool {
	for _, c := range identifierColumns {
		if strings.EqualFold(strings.TrimSpace(h), c) {
			return true
		}
	}
	return false
}

func identifierField(obj map[string]any) (string, bool) {
	for _, c := range identifierColumns {
		if s, ok := obj[c].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
