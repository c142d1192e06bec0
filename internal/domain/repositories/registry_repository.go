package repositories

import (
	"context"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/entities"
)

// RegistryRepository resolves the set of published versions for a coordinate.
// scalaVersion is the project's Scala version when known ("" otherwise); it
// drives the binary-suffix probing order for cross-built artifacts.
// Failures are reported as *entities.RegistryError, scoped to one coordinate.
type RegistryRepository interface {
	Versions(ctx context.Context, coord entities.Coordinate, scalaVersion string) ([]string, error)
}

// RegistryFactory builds the registry repository for one run. Construction is
// deferred because the registry endpoint, timeout and retry budget come from
// the configuration loaded at execution time.
type RegistryFactory func(cfg *config.Config) RegistryRepository
