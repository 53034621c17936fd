package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// ReadConfig reads a json5 configuration file. A sibling
// `<name>.local.<ext>` file may exist; when it does its values override
// the base file's. Returns os.ErrNotExist when neither file is present.
func ReadConfig[T any](name string) (T, error) {
	var out T

	base, err := readInto(name, &out)
	if err != nil {
		return out, err
	}

	ext := filepath.Ext(name)
	localPath := strings.TrimSuffix(name, ext) + ".local" + ext
	var override T
	local, err := readInto(localPath, &override)
	if err != nil {
		return out, err
	}
	if local {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !base && !local {
		return out, os.ErrNotExist
	}
	return out, nil
}

// readInto loads and unmarshals one file, reporting whether it held
// anything. An empty file counts as absent.
func readInto[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadRecursively is ReadConfig but it walks up from the cwd toward the
// filesystem root looking for a file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if !os.IsNotExist(err) {
			return config, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
