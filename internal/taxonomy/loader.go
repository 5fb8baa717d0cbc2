package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default_skills.yaml
var defaultCatalog []byte

// Load reads a taxonomy from path. An empty path selects the built-in catalog.
// A missing, unreadable or malformed source never fails: it is logged as a warning
// and an empty taxonomy is returned, so skill matching simply finds nothing.
func Load(path string, logger *zap.Logger) *Taxonomy {
	if logger == nil {
		logger = zap.NewNop()
	}

	path = strings.TrimSpace(path)
	if path == "" {
		t, err := Decode(defaultCatalog, "yaml")
		if err != nil {
			logger.Warn("decoding built-in skills catalog, using empty taxonomy", zap.Error(err))
			return Empty()
		}
		logger.Debug("loaded built-in skills catalog", zap.Int("skills", t.Len()))
		return t
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skills file is not readable, using empty taxonomy",
			zap.String("path", path),
			zap.Error(err),
		)
		return Empty()
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	t, err := Decode(data, format)
	if err != nil {
		logger.Warn("skills file is malformed, using empty taxonomy",
			zap.String("path", path),
			zap.Error(err),
		)
		return Empty()
	}

	logger.Debug("loaded skills file",
		zap.String("path", path),
		zap.Int("categories", len(t.Categories())),
		zap.Int("skills", t.Len()),
	)

	return t
}

// Decode parses a category -> skills mapping encoded as "json" or "yaml".
func Decode(data []byte, format string) (*Taxonomy, error) {
	var raw map[string]any

	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json taxonomy: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml taxonomy: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported taxonomy format: %s", format)
	}

	var categories map[string][]string
	if err := mapstructure.Decode(raw, &categories); err != nil {
		return nil, fmt.Errorf("decode taxonomy categories: %w", err)
	}

	return New(categories), nil
}
