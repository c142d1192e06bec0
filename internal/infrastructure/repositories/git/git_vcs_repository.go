package git

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"
)

// GitVCSRepository commits rewritten build files on a fresh branch of the
// project's local git repository.
type GitVCSRepository struct{}

func NewGitVCSRepository() *GitVCSRepository {
	return &GitVCSRepository{}
}

// CommitOnBranch checks out a new branch (keeping the working tree as-is),
// stages the given paths and commits them.
func (it *GitVCSRepository) CommitOnBranch(dir, branch, message string, paths []string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open git repository in %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree in %q: %w", dir, err)
	}

	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
		Keep:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to create branch %q: %w", branch, err)
	}

	for _, path := range paths {
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if _, addErr := worktree.Add(rel); addErr != nil {
			return fmt.Errorf("failed to stage %q: %w", rel, addErr)
		}
	}

	commit, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "sbtup",
			Email: "sbtup@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit on branch %q: %w", branch, err)
	}

	logger.Infof("Committed %d file(s) on branch %q (%s)", len(paths), branch, commit.String()[:7])
	return nil
}
