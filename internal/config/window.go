package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Window is the persisted window position. In the terminal it offsets the
// frame from the top-left corner, in cells.
type Window struct {
	X int
	Y int
}

// ParseWindow reads "key=value" lines. Blank lines and lines starting with
// '#' are ignored, as are unknown keys.
func ParseWindow(r io.Reader) (Window, error) {
	var w Window
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return w, fmt.Errorf("window config line %d: missing '='", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var dst *int
		switch key {
		case "window.x":
			dst = &w.X
		case "window.y":
			dst = &w.Y
		default:
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return w, fmt.Errorf("window config line %d: %s: %w", line, key, err)
		}
		*dst = n
	}
	if err := scanner.Err(); err != nil {
		return w, fmt.Errorf("window config: %w", err)
	}
	return w, nil
}

// LoadWindow reads the window file. A missing file yields the zero
// position and no error.
func LoadWindow(path string) (Window, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Window{}, nil
		}
		return Window{}, fmt.Errorf("failed to read window config %s: %w", path, err)
	}
	defer f.Close()
	return ParseWindow(f)
}

// SaveWindow writes the window file.
func SaveWindow(path string, w Window) error {
	data := fmt.Sprintf("window.x=%d\nwindow.y=%d\n", w.X, w.Y)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write window config %s: %w", path, err)
	}
	return nil
}
