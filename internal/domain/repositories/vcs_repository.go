package repositories

// VCSRepository commits rewritten build files on a fresh branch of the
// project's repository.
type VCSRepository interface {
	CommitOnBranch(dir, branch, message string, paths []string) error
}
