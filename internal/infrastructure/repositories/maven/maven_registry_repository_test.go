package maven_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/entities"
	"github.com/scalatools/sbtup/internal/infrastructure/repositories/maven"
)

func listingHTML(versions ...string) string {
	body := `<html><body><a href="../">../</a>`
	for _, v := range versions {
		body += fmt.Sprintf(`<a href="%s/">%s/</a>`, v, v)
	}
	body += `<a href="maven-metadata.xml">maven-metadata.xml</a></body></html>`
	return body
}

func testConfig(url string) *config.Config {
	cfg := config.Default()
	cfg.Registry.URL = url
	cfg.Registry.MaxRetries = 0
	return cfg
}

func TestMavenRegistryRepository_Versions(t *testing.T) {
	t.Parallel()

	t.Run("should list version directories for a plain artifact", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/org/example/lib/" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, listingHTML("1.2.0", "1.3.0", "2.0.0"))
		}))
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		coord := entities.Coordinate{Group: "org.example", Artifact: "lib"}

		// when
		versions, err := repo.Versions(t.Context(), coord, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"2.0.0", "1.3.0", "1.2.0"}, versions)
	})

	t.Run("should probe the project's Scala binary suffix first", func(t *testing.T) {
		t.Parallel()

		// given
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			if r.URL.Path == "/dev/zio/zio_2.13/" {
				fmt.Fprint(w, listingHTML("2.0.0"))
				return
			}
			http.NotFound(w, r)
		}))
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		coord := entities.Coordinate{Group: "dev.zio", Artifact: "zio", CrossBuilt: true}

		// when
		versions, err := repo.Versions(t.Context(), coord, "2.13.8")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"2.0.0"}, versions)
		require.NotEmpty(t, paths)
		assert.Equal(t, "/dev/zio/zio_2.13/", paths[0])
	})

	t.Run("should fall through the suffix ladder when the Scala version is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/dev/zio/zio_2.13/" {
				fmt.Fprint(w, listingHTML("1.0.18"))
				return
			}
			http.NotFound(w, r)
		}))
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		coord := entities.Coordinate{Group: "dev.zio", Artifact: "zio", CrossBuilt: true}

		// when
		versions, err := repo.Versions(t.Context(), coord, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"1.0.18"}, versions)
	})

	t.Run("should report not found when no artifact directory exists", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		coord := entities.Coordinate{Group: "org.example", Artifact: "gone", CrossBuilt: true}

		// when
		versions, err := repo.Versions(t.Context(), coord, "2.13.8")

		// then
		assert.Nil(t, versions)
		var regErr *entities.RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, entities.RegistryNotFound, regErr.Kind)
		assert.Equal(t, coord, regErr.Coordinate)
	})

	t.Run("should report a network error on a server failure", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		coord := entities.Coordinate{Group: "org.example", Artifact: "lib"}

		// when
		_, err := repo.Versions(t.Context(), coord, "")

		// then
		var regErr *entities.RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, entities.RegistryNetwork, regErr.Kind)
	})

	t.Run("should surface the bare context error when the run is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, listingHTML("1.0.0"))
		}))
		defer server.Close()
		repo := maven.NewMavenRegistryRepository(testConfig(server.URL))
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// when
		_, err := repo.Versions(ctx, entities.Coordinate{Group: "org.example", Artifact: "lib"}, "")

		// then
		require.ErrorIs(t, err, context.Canceled)
		var regErr *entities.RegistryError
		assert.False(t, errors.As(err, &regErr), "cancellation must not be reported as a registry failure")
	})
}
