package repositories

import (
	"go.uber.org/dig"

	"github.com/scalatools/sbtup/config"
	domainRepos "github.com/scalatools/sbtup/internal/domain/repositories"
	"github.com/scalatools/sbtup/internal/infrastructure/repositories/git"
	"github.com/scalatools/sbtup/internal/infrastructure/repositories/maven"
	"github.com/scalatools/sbtup/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The registry repository is built per run: its endpoint and retry
	// budget come from the configuration loaded at execution time.
	if err := container.Provide(func() domainRepos.RegistryFactory {
		return func(cfg *config.Config) domainRepos.RegistryRepository {
			return NewCachedRegistryRepository(maven.NewMavenRegistryRepository(cfg))
		}
	}); err != nil {
		return err
	}

	if err := container.Provide(workspace.NewLocalWorkspaceRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *workspace.LocalWorkspaceRepository) domainRepos.WorkspaceRepository {
		return impl
	}); err != nil {
		return err
	}

	if err := container.Provide(git.NewGitVCSRepository); err != nil {
		return err
	}
	return container.Provide(func(impl *git.GitVCSRepository) domainRepos.VCSRepository {
		return impl
	})
}
