package cart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// recordVersion is bumped when the on-disk shape changes. Records with an
// unknown version are treated as absent rather than migrated or rejected.
const recordVersion = 1

const defaultCartPath = "~/.local/share/aisle/cart.toml"

// record is the single durable unit: the full line collection plus a
// version tag.
type record struct {
	Version int    `toml:"version"`
	Items   []Line `toml:"items"`
}

// DefaultPath returns the default cart file path.
func DefaultPath() string {
	return defaultCartPath
}

func load(path string) []Line {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil
	}

	var rec record
	if err := toml.Unmarshal(bytes, &rec); err != nil {
		return nil // Graceful degradation
	}
	if rec.Version != recordVersion {
		return nil
	}

	// Drop structurally invalid lines instead of refusing the whole cart.
	lines := rec.Items[:0]
	for _, line := range rec.Items {
		if line.ID == 0 || line.Quantity < 1 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (l *Ledger) save() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	bytes, err := toml.Marshal(record{Version: recordVersion, Items: l.lines})
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := os.WriteFile(l.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultCartPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
