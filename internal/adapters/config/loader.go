// Package config provides the project defaults loader for cmake-cli.
package config

import (
	"os"
	"path/filepath"

	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader over a YAML defaults file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load searches cwd and its parents for a defaults file. A missing file is
// not an error; the zero Defaults is returned.
func (l *Loader) Load(cwd string) (ports.Defaults, error) {
	path, found := findDefaultsFile(cwd)
	if !found {
		return ports.Defaults{}, nil
	}

	//nolint:gosec // path comes from the upward directory walk, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.Defaults{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return ports.Defaults{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return ports.Defaults{
		Generator: file.Generator,
		CCache:    file.CCache,
		Pager:     file.Pager,
		Threads:   file.Threads,
		KeepGoing: file.KeepGoing,
		SourceDir: file.SourceDir,
	}, nil
}

// findDefaultsFile walks from cwd to the filesystem root and returns the
// first defaults file encountered.
func findDefaultsFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}
