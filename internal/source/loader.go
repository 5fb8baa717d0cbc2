package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is read when File is "-".
var Stdin io.Reader = os.Stdin

// Source describes where a text input such as a job description comes from.
type Source struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file containing the text. "-" reads standard input. When set
	// it takes precedence over Value.
	File string
}

// Load returns the resolved text from the provided source. When File is set it
// takes precedence over Value. The returned text is always trimmed. An error is
// returned when neither File nor Value contain any text.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "input"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := read(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	text := strings.TrimSpace(src.Value)
	if text == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q is empty", name, src.File)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return text, nil
}

func read(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(Stdin)
	}
	return os.ReadFile(file)
}
