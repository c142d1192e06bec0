package controllers

import (
	"github.com/scalatools/sbtup/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewUpdateController); err != nil {
		return err
	}
	return container.Provide(NewControllers)
}

// NewControllers aggregates all controllers into a slice for the AppContext.
func NewControllers(updateController *UpdateController) *[]entities.Controller {
	return &[]entities.Controller{
		updateController,
	}
}
