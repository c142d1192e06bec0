package internal

import (
	"github.com/scalatools/sbtup/internal/domain/entities"
)

// AppContext holds the wired controllers the CLI layer mounts as commands.
type AppContext struct {
	controllers *[]entities.Controller
}

// NewAppContext creates the application context from the aggregated controllers.
func NewAppContext(controllers *[]entities.Controller) *AppContext {
	return &AppContext{controllers: controllers}
}

// GetControllers returns the registered controllers.
func (it *AppContext) GetControllers() []entities.Controller {
	return *it.controllers
}
