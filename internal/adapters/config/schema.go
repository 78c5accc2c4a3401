package config

// FileName is the project defaults file searched for from the working
// directory upward.
const FileName = ".cmake-cli.yaml"

// defaultsFile mirrors the YAML structure of the defaults file. Pointer
// fields distinguish "key absent" from an explicit value.
type defaultsFile struct {
	Generator *string `yaml:"generator"`
	CCache    *bool   `yaml:"ccache"`
	Pager     *bool   `yaml:"pager"`
	Threads   *int    `yaml:"threads"`
	KeepGoing *bool   `yaml:"keep_going"`
	SourceDir *string `yaml:"source_dir"`
}
