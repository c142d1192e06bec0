package repositories

// WorkspaceRepository is the file-access collaborator: it reads the build
// files once at scan time and performs the single deferred write with
// atomic replace-with-backup semantics.
type WorkspaceRepository interface {
	// ListBuildFiles returns the sbt build files of a project directory in a
	// stable order: build.sbt first, then project/*.sbt sorted by name.
	ListBuildFiles(dir string) ([]string, error)

	ReadFile(path string) (string, error)

	// WriteFile atomically replaces path with content, keeping a .bak copy
	// of the original when backup is true.
	WriteFile(path, content string, backup bool) error
}
