package repositories

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/scalatools/sbtup/internal/domain/entities"
	domainrepositories "github.com/scalatools/sbtup/internal/domain/repositories"
)

type cacheEntry struct {
	versions []string
	err      error
}

// CachedRegistryRepository decorates a registry repository with a run-scoped,
// write-once-per-key cache. Duplicate declarations of the same coordinate
// resolve once; concurrent callers for one key are collapsed into a single
// in-flight lookup. Failures are cached as well, so a coordinate the registry
// rejected is never retried within the run.
type CachedRegistryRepository struct {
	inner   domainrepositories.RegistryRepository
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCachedRegistryRepository(inner domainrepositories.RegistryRepository) *CachedRegistryRepository {
	return &CachedRegistryRepository{
		inner:   inner,
		entries: make(map[string]cacheEntry),
	}
}

func (it *CachedRegistryRepository) Versions(
	ctx context.Context, coord entities.Coordinate, scalaVersion string,
) ([]string, error) {
	key := coord.Key()
	if entry, ok := it.lookup(key); ok {
		return entry.versions, entry.err
	}

	result, err, _ := it.group.Do(key, func() (interface{}, error) {
		if entry, ok := it.lookup(key); ok {
			return entry.versions, entry.err
		}
		versions, innerErr := it.inner.Versions(ctx, coord, scalaVersion)
		it.mu.Lock()
		it.entries[key] = cacheEntry{versions: versions, err: innerErr}
		it.mu.Unlock()
		return versions, innerErr
	})

	versions, _ := result.([]string)
	return versions, err
}

func (it *CachedRegistryRepository) lookup(key string) (cacheEntry, bool) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	entry, ok := it.entries[key]
	return entry, ok
}
