package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/resume"
)

const resumeText = "John Smith\njohn.smith@example.com\n(555) 123-4567\nSkills: Go, Docker, Kubernetes\n" +
	"EXPERIENCE\nSoftware Engineer 2020\nBuilt systems.\nEDUCATION\nBS Computer Science"

func writeDocs(t *testing.T, contents map[string]string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for _, name := range []string{"first.txt", "second.md", "short.txt", "cv.rtf"} {
		content, ok := contents[name]
		if !ok {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths = append(paths, path)
	}
	return paths
}

func testConfig() *Config {
	return &Config{
		ScannedThreshold: document.DefaultScannedThreshold,
		MaxFileSize:      document.DefaultMaxFileSize,
		Concurrency:      2,
		Format:           resume.FormatJSON,
	}
}

func testParser(config *Config) *resume.Parser {
	logger := zap.NewNop()
	return resume.New(newExtractor(config, logger), newMatcher(config, logger), logger)
}

func TestParseAllKeepsOrder(t *testing.T) {
	paths := writeDocs(t, map[string]string{
		"first.txt": resumeText,
		"second.md": strings.Replace(resumeText, "John Smith", "Jane Doe", 1),
		"short.txt": "scan",
	})

	docs, err := parseAll(context.Background(), testParser(testConfig()), paths, 2, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if docs.Len() != 3 {
		t.Fatalf("expected 3 documents, got %d", docs.Len())
	}
	for i, doc := range docs.Items {
		if doc.Path != paths[i] {
			t.Fatalf("expected %s at %d, got %s", paths[i], i, doc.Path)
		}
	}

	if first := docs.Items[1].Result.Parsed.FirstName; first == nil || *first != "Jane" {
		t.Fatalf("unexpected first name: %v", first)
	}
	if got := docs.Scanned(); len(got) != 1 || got[0] != paths[2] {
		t.Fatalf("unexpected scanned documents: %v", got)
	}
}

func TestParseAllUnsupportedFormat(t *testing.T) {
	paths := writeDocs(t, map[string]string{"first.txt": resumeText, "cv.rtf": resumeText})

	_, err := parseAll(context.Background(), testParser(testConfig()), paths, 1, zap.NewNop())
	if !errors.Is(err, document.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestHandleAction(t *testing.T) {
	paths := writeDocs(t, map[string]string{"first.txt": resumeText})
	config := testConfig()

	docs, err := parseAll(context.Background(), testParser(config), paths, 1, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	var out bytes.Buffer
	if err := handleAction(PromptPrint, docs, config, "", logger, &out); err != nil {
		t.Fatalf("print: %v", err)
	}
	var printed map[string]any
	if err := json.Unmarshal(out.Bytes(), &printed); err != nil {
		t.Fatalf("printed result is not json: %v", err)
	}
	if printed["email"] != "john.smith@example.com" {
		t.Fatalf("unexpected email %v", printed["email"])
	}

	outDir := filepath.Join(t.TempDir(), "results")
	if err := handleAction(PromptDump, docs, config, outDir, logger, &out); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "first.json")); err != nil {
		t.Fatalf("expected dumped file: %v", err)
	}

	if err := handleAction(PromptSkillsReport, docs, config, "", logger, &out); err != nil {
		t.Fatalf("skills report: %v", err)
	}
	report := observed.FilterField(zap.Int("documents count", 1)).All()
	if len(report) != 1 || !strings.Contains(report[0].Message, "Kubernetes") {
		t.Fatalf("unexpected skills report: %+v", report)
	}

	if err := handleAction(PromptNo, docs, config, "", logger, &out); !errors.Is(err, errExit) {
		t.Fatalf("expected exit, got %v", err)
	}

	if err := handleAction("unknown", docs, config, "", logger, &out); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestValidateAll(t *testing.T) {
	paths := writeDocs(t, map[string]string{"first.txt": resumeText, "short.txt": ""})

	docs, err := parseAll(context.Background(), testParser(testConfig()), paths, 2, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := validateAll(docs, zap.NewNop()); err != nil {
		t.Fatalf("expected valid results, got %v", err)
	}

	docs.Items = append(docs.Items, &resume.Document{Path: "broken", Result: &resume.Result{}})
	if err := validateAll(docs, zap.NewNop()); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestGetConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		setDefaults()
	})

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Concurrency != 4 || config.Format != resume.FormatJSON || config.ScannedThreshold != document.DefaultScannedThreshold {
		t.Fatalf("unexpected defaults: %+v", config)
	}

	viper.Set("format", "toml")
	if _, err := getConfig(); err == nil {
		t.Fatalf("expected validation error for format")
	}

	viper.Set("format", resume.FormatYAML)
	viper.Set("concurrency", 0)
	if _, err := getConfig(); err == nil {
		t.Fatalf("expected validation error for concurrency")
	}
}
