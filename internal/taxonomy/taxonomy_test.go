package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFlattensInCategoryOrder(t *testing.T) {
	tax := New(map[string][]string{
		"web":       {"React", "CSS"},
		"databases": {"Redis", "SQL"},
		"languages": {"SQL", "Python"},
	})

	assert.Equal(t, []string{"Redis", "SQL", "SQL", "Python", "React", "CSS"}, tax.Flat())
	assert.Equal(t, []string{"databases", "languages", "web"}, tax.Categories())
	assert.Equal(t, 6, tax.Len())
}

func TestNewCopiesInput(t *testing.T) {
	input := map[string][]string{"languages": {"Python"}}
	tax := New(input)

	input["languages"][0] = "Ruby"
	input["extra"] = []string{"Go"}

	assert.Equal(t, []string{"Python"}, tax.Skills("languages"))
	assert.Equal(t, []string{"Python"}, tax.Flat())

	flat := tax.Flat()
	flat[0] = "mutated"
	assert.Equal(t, []string{"Python"}, tax.Flat())
}

func TestEmptyAndNil(t *testing.T) {
	assert.Empty(t, Empty().Flat())
	assert.Zero(t, Empty().Len())

	var tax *Taxonomy
	assert.Nil(t, tax.Flat())
	assert.Nil(t, tax.Categories())
	assert.Zero(t, tax.Len())
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  string
		want    []string
		wantErr bool
	}{
		{
			name:   "yaml",
			data:   "languages:\n  - Python\n  - Java\n",
			format: "yaml",
			want:   []string{"Python", "Java"},
		},
		{
			name:   "json",
			data:   `{"languages": ["Python", "Java"]}`,
			format: "json",
			want:   []string{"Python", "Java"},
		},
		{
			name:   "empty yaml",
			data:   "",
			format: "yaml",
			want:   nil,
		},
		{
			name:    "broken json",
			data:    `{"languages": [`,
			format:  "json",
			wantErr: true,
		},
		{
			name:    "category is not a list",
			data:    "languages: 42\n",
			format:  "yaml",
			wantErr: true,
		},
		{
			name:    "unknown format",
			data:    "",
			format:  "toml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tax, err := Decode([]byte(tt.data), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tax.Flat())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cloud": ["AWS", "GCP"]}`), 0o644))

	tax := Load(path, zap.NewNop())
	assert.Equal(t, []string{"AWS", "GCP"}, tax.Flat())
}

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)

	tax := Load(filepath.Join(t.TempDir(), "absent.yaml"), zap.New(core))

	require.NotNil(t, tax)
	assert.Zero(t, tax.Len())

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestLoadMalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [unterminated"), 0o644))

	tax := Load(path, nil)
	assert.Zero(t, tax.Len())
}

func TestLoadBuiltInCatalog(t *testing.T) {
	tax := Load("", nil)

	assert.Contains(t, tax.Flat(), "Java")
	assert.Contains(t, tax.Flat(), "JavaScript")
	assert.Contains(t, tax.Categories(), "languages")
}
