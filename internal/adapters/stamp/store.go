// Package stamp records which generation command last configured a build
// tree. The stamp is purely advisory: it only backs a "flags changed since
// last generation" warning for --skip-gen runs.
package stamp

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the stamp file written into the build directory.
const FileName = ".cmake-cli-stamp.yaml"

// stampFile mirrors the YAML structure of the stamp file.
type stampFile struct {
	// GenDigest is the xxhash digest of the generation command line.
	GenDigest string `yaml:"gen_digest"`
}

// Store implements ports.StampStore using a file-per-build-directory layout.
type Store struct{}

// NewStore creates a new stamp Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the stored digest for the build directory, or "" when no
// stamp exists. A missing stamp is not an error.
func (s *Store) Get(directory string) (string, error) {
	//nolint:gosec // path is the build directory plus a fixed file name
	data, err := os.ReadFile(filepath.Join(directory, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.Wrap(err, "failed to read generation stamp")
	}

	var file stampFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", zerr.Wrap(err, "failed to parse generation stamp")
	}
	return file.GenDigest, nil
}

// Put stores the digest of the generation command for the directory. The
// build directory is created if the generation itself has not done so yet.
func (s *Store) Put(directory string, cmd domain.CommandLine) error {
	data, err := yaml.Marshal(stampFile{GenDigest: s.Digest(cmd)})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStampWriteFailed.Error())
	}

	if err := os.MkdirAll(directory, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStampWriteFailed.Error())
	}

	path := filepath.Join(directory, FileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStampWriteFailed.Error())
	}
	return nil
}

// Digest returns the xxhash digest of the command's tokens. Tokens are
// length-prefixed via a separator-free scheme: each token's bytes are fed
// followed by a NUL, which cannot occur inside an argv token.
func (s *Store) Digest(cmd domain.CommandLine) string {
	h := xxhash.New()
	for _, tok := range cmd {
		_, _ = h.WriteString(tok)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
