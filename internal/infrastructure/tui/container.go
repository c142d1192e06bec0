package tui

import (
	"go.uber.org/dig"

	domainRepos "github.com/scalatools/sbtup/internal/domain/repositories"
)

// RegisterProviders registers the selection UI with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewTUICandidateSelector); err != nil {
		return err
	}
	return container.Provide(func(impl *TUICandidateSelector) domainRepos.CandidateSelector {
		return impl
	})
}
