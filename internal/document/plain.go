package document

import (
	"errors"
	"unicode/utf8"
)

// Plain passes UTF-8 text documents through.
type Plain struct{}

func (Plain) Name() string { return "plain" }

func (Plain) Text(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text document is not valid utf-8")
	}
	return string(data), nil
}
