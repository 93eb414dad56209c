package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInputUnreadable = errors.New("input file could not be read")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadLines reads a UTF-8 text file and returns its lines with surrounding
// whitespace removed. Failure is total: either every line is returned or an
// error wrapping ErrInputNotFound or ErrInputUnreadable.
func LoadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8 content", ErrInputUnreadable, path)
	}

	return splitLines(string(content)), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
