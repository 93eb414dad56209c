package cmd

import (
	"custdesc/config"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const configFileName = ".custdesc.yaml"

// configFilePath picks the file the config commands operate on: the
// --configFile flag, then the file viper loaded, then $HOME/.custdesc.yaml.
func configFilePath(flagValue, loaded string) (string, error) {
	for _, candidate := range []string{flagValue, loaded} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// writeExampleConfig writes config.ExampleYAML to path unless a file already
// exists there. It reports whether a file was written.
func writeExampleConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("write example config %s: %w", path, err)
	}
	return true, nil
}

// checkConfigFile validates the YAML at path and prints the resolved
// describe settings so a typo in format or language shows up immediately.
func checkConfigFile(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return fmt.Errorf("config %s is invalid: %w", path, err)
	}

	fmt.Fprintf(w, "Config %s is valid: %s -> %s (format %s, language %s)\n",
		path, cfg.Input.Path, cfg.Output.Path, cfg.Output.Format, cfg.Output.Language)
	return nil
}

// editorFor builds the editor invocation from $VISUAL or $EDITOR, which may
// carry arguments (e.g. "code --wait"), falling back to vi.
func editorFor(visual, editor, path string) (*exec.Cmd, error) {
	value := "vi"
	switch {
	case strings.TrimSpace(visual) != "":
		value = visual
	case strings.TrimSpace(editor) != "":
		value = editor
	}

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return exec.Command(fields[0], append(fields[1:], path)...), nil
}
