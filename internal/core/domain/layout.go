package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".fanout"

	// ManifestFileName is the name of the build manifest file.
	ManifestFileName = "manifest.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "fanout.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultManifestPath returns the manifest path relative to the project root.
// It joins .fanout and manifest.json.
func DefaultManifestPath() string {
	return filepath.Join(StateDirName, ManifestFileName)
}
