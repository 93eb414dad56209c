package output

import (
	"custdesc/describe"
	"fmt"
	"io"
	"os"
)

// TextWriter writes each description verbatim, one after another.
type TextWriter struct{}

func (w *TextWriter) Write(path string, descriptions []describe.Description) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create text output %s: %w", path, err)
	}
	defer file.Close()

	written, err := writeTexts(file, descriptions)
	if err != nil {
		return written, fmt.Errorf("write text output %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return written, fmt.Errorf("close text output %s: %w", path, err)
	}

	return written, nil
}

func writeTexts(w io.Writer, descriptions []describe.Description) (int, error) {
	for i, description := range descriptions {
		if _, err := io.WriteString(w, description.Text); err != nil {
			return i, err
		}
	}
	return len(descriptions), nil
}
