package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/resume"
)

func TestValidateParsedResult(t *testing.T) {
	p := resume.New(nil, nil, nil)

	for _, text := range []string{
		"",
		"John Smith\njohn.smith@example.com\n(555) 123-4567\nEXPERIENCE\nSoftware Engineer 2020\nBuilt systems.\nEDUCATION\nBS Computer Science",
		"Jane Doe\nSummary\n" + strings.Repeat("é", 700) + "\nhttps://github.com/jane",
	} {
		result := &resume.Result{Parsed: p.Extract(text)}
		assert.NoError(t, Validate(result))
	}
}

func TestValidateScannedResult(t *testing.T) {
	result := resume.New(nil, nil, nil).ParseText(document.NewText("short", document.DefaultScannedThreshold))
	require.True(t, result.IsScanned())

	assert.NoError(t, Validate(result))
}

func TestValidateJSONRejectsMalformedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "scanned with confidence",
			input: `{"error":"scanned_pdf","message":"m","extractedText":"","confidence":{"overall":0.5}}`,
			field: "confidence.overall",
		},
		{
			name:  "scanned missing message",
			input: `{"error":"scanned_pdf","extractedText":"","confidence":{"overall":0}}`,
			field: "(root)",
		},
		{
			name: "parsed with location",
			input: `{"firstName":null,"lastName":null,"username":null,"email":null,"phone":null,` +
				`"location":"Berlin","links":[],"headline":null,"summary":null,"skills":[],` +
				`"education":[],"experience":[],"projects":[],"extractedText":"",` +
				`"confidence":{"email":0,"phone":0,"firstName":0,"lastName":0,"links":0,` +
				`"skills":0,"experience":0,"education":0,"projects":0,"overall":0}}`,
			field: "location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tt.input))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateJSONBadInput(t *testing.T) {
	err := ValidateJSON([]byte("{ invalid json }"))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestValidateEmptyResult(t *testing.T) {
	assert.Error(t, Validate(&resume.Result{}))
}
