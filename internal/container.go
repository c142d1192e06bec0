package internal

import (
	"go.uber.org/dig"

	"github.com/scalatools/sbtup/internal/domain/commands"
	"github.com/scalatools/sbtup/internal/domain/entities"
	"github.com/scalatools/sbtup/internal/infrastructure/controllers"
	"github.com/scalatools/sbtup/internal/infrastructure/repositories"
	"github.com/scalatools/sbtup/internal/infrastructure/tui"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := tui.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return container.Provide(NewAppContext)
}
