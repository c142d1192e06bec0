// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/scalatools/sbtup/internal/domain/entities"
	"github.com/scalatools/sbtup/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository over
// canned per-coordinate responses. It records every lookup and is safe for
// concurrent use.
type StubRegistryRepository struct {
	VersionsByKey map[string][]string
	ErrsByKey     map[string]error

	// WrapCancellation reports a cancelled context as a network-kind
	// RegistryError wrapping the context error, the way a transport layer
	// that folds every request failure into its own error type would.
	WrapCancellation bool

	mu    sync.Mutex
	calls []string
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) Versions(
	ctx context.Context, coord entities.Coordinate, _ string,
) ([]string, error) {
	if err := ctx.Err(); err != nil {
		if s.WrapCancellation {
			return nil, &entities.RegistryError{Kind: entities.RegistryNetwork, Coordinate: coord, Err: err}
		}
		return nil, err
	}

	key := coord.Key()
	s.mu.Lock()
	s.calls = append(s.calls, key)
	s.mu.Unlock()

	if err, ok := s.ErrsByKey[key]; ok {
		return nil, err
	}
	if versions, ok := s.VersionsByKey[key]; ok {
		return versions, nil
	}
	return nil, &entities.RegistryError{Kind: entities.RegistryNotFound, Coordinate: coord}
}

// Calls returns the coordinate keys looked up so far, in call order.
func (s *StubRegistryRepository) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount returns the number of lookups issued for one coordinate key.
func (s *StubRegistryRepository) CallCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, c := range s.calls {
		if c == key {
			count++
		}
	}
	return count
}
