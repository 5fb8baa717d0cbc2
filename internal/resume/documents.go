package resume

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats supported by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the result of parsing one file.
type Document struct {
	Path   string  `json:"path" yaml:"path"`
	Result *Result `json:"result" yaml:"result"`
}

// Documents is a batch of parsed files in input order.
type Documents struct {
	Items []*Document
}

func (d *Documents) Len() int {
	return len(d.Items)
}

// Scanned returns the paths of documents short-circuited as scanned.
func (d *Documents) Scanned() []string {
	paths := make([]string, 0)
	for _, doc := range d.Items {
		if doc.Result.IsScanned() {
			paths = append(paths, doc.Path)
		}
	}
	return paths
}

// ReportBySkill maps every matched skill to the documents mentioning it.
func (d *Documents) ReportBySkill() map[string][]string {
	report := make(map[string][]string)
	for _, doc := range d.Items {
		if doc.Result == nil || doc.Result.Parsed == nil {
			continue
		}
		for _, skill := range doc.Result.Parsed.Skills {
			report[skill] = append(report[skill], doc.Path)
		}
	}
	for _, paths := range report {
		sort.Strings(paths)
	}
	return report
}

// DumpToDir writes every result to dir as <basename>.<format> and returns the
// written file names. Repeated basenames get a -2, -3, ... suffix, so every
// document has its own file.
func (d *Documents) DumpToDir(dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, d.Len())
	used := make(map[string]bool, d.Len())
	for _, doc := range d.Items {
		base := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
		name := filepath.Join(dir, base+"."+format)
		for n := 2; used[name]; n++ {
			name = filepath.Join(dir, fmt.Sprintf("%s-%d.%s", base, n, format))
		}
		used[name] = true

		if err := writeFile(name, doc.Result, format); err != nil {
			return names, fmt.Errorf("dump %s: %w", doc.Path, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// DumpToTmpFile writes the whole batch to a temporary file.
func (d *Documents) DumpToTmpFile(format string) (string, error) {
	file, err := os.CreateTemp("", "resumes_*."+format)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Encode(file, d.Items, format); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeFile(name string, v any, format string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return Encode(file, v, format)
}
