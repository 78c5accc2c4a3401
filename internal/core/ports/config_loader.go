package ports

// Defaults are the optional project-level flag defaults read from a
// .cmake-cli.yaml found at or above the working directory. Pointer fields
// distinguish "not specified" from an explicit value so that only defaults
// the file actually sets override the built-in ones.
type Defaults struct {
	Generator *string
	CCache    *bool
	Pager     *bool
	Threads   *int
	KeepGoing *bool
	SourceDir *string
}

// ConfigLoader locates and parses the project defaults file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches cwd and its parents for a defaults file. A missing
	// file yields an empty Defaults and no error; a malformed file is an
	// error.
	Load(cwd string) (Defaults, error)
}
