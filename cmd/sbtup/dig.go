package main

import (
	"github.com/scalatools/sbtup/internal"
	"github.com/scalatools/sbtup/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppContext {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppContext
	var appContext *internal.AppContext
	if err := container.Invoke(func(ac *internal.AppContext) {
		appContext = ac
	}); err != nil {
		panic(err)
	}

	return appContext
}

func injectUpdateController() *controllers.UpdateController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var updateController *controllers.UpdateController
	if err := container.Invoke(func(uc *controllers.UpdateController) {
		updateController = uc
	}); err != nil {
		panic(err)
	}

	return updateController
}
