package ports

import "github.com/rgreenblatt/cmake-cli/internal/core/domain"

// StampStore records which generation command last configured a build tree,
// so a later --skip-gen run can be warned when the flags have drifted. The
// stamp is purely advisory: reads and writes may fail silently at the call
// site's discretion.
//
//go:generate mockgen -source=stamp.go -destination=mocks/mock_stamp.go -package=mocks
type StampStore interface {
	// Get returns the stored digest of the generation command for the
	// given build directory. It returns "" when no stamp exists.
	Get(directory string) (string, error)

	// Put stores the digest of the generation command for the directory.
	Put(directory string, cmd domain.CommandLine) error

	// Digest returns the digest Put would store for the command.
	Digest(cmd domain.CommandLine) string
}
