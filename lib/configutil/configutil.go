package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func readJson5[T any](path string, out *T) (bool, error) {
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

// reads a configuration file, `name` should come with a file extension,
// it will automatically be lopped off to produce the other extensions.
// this function will merge the following files, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
func ReadConfig[T any](name string) (T, error) {
	var out T

	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))

	foundDefault, err := readJson5(name, &out)
	if err != nil {
		return out, err
	}

	localFilepath := filepath.Join(
		dirname,
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
	var override T
	foundLocal, err := readJson5(localFilepath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Debug("merging config with local overrides", "local", localFilepath)
	}

	if !foundDefault && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it recursively goes up the filesystem until the root
// to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return defaultOut, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return defaultOut, os.ErrNotExist
		}
		current = parent
	}
}

// ReadWithDefaults reads the config at `name` (see ReadConfig) and merges it
// over `defaults`, a missing file is not an error.
func ReadWithDefaults[T any](name string, defaults T) (T, error) {
	found, err := ReadConfig[T](name)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}
	out := defaults
	err = mergo.Merge(&out, found, mergo.WithOverride)
	if err != nil {
		return defaults, err
	}
	return out, nil
}
