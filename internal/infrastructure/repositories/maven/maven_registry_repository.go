package maven

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/entities"
)

// MavenRegistryRepository resolves published versions by scraping the
// directory listing a Maven repository serves at
// <base>/<group-path>/<artifact>/. Transient failures are retried with
// backoff by the underlying client; a missing artifact is terminal.
type MavenRegistryRepository struct {
	baseURL string
	client  *retryablehttp.Client
}

func NewMavenRegistryRepository(cfg *config.Config) *MavenRegistryRepository {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Registry.MaxRetries
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = time.Duration(cfg.Registry.TimeoutSeconds) * time.Second
	client.Logger = nil

	return &MavenRegistryRepository{
		baseURL: strings.TrimSuffix(cfg.Registry.URL, "/"),
		client:  client,
	}
}

// Versions lists the published versions for a coordinate, newest first.
// Cross-built artifacts are probed under each known Scala binary suffix,
// starting with the project's own Scala version when it is known.
func (it *MavenRegistryRepository) Versions(
	ctx context.Context, coord entities.Coordinate, scalaVersion string,
) ([]string, error) {
	var lastErr error
	for _, artifact := range artifactNames(coord, scalaVersion) {
		versions, err := it.listVersions(ctx, coord, artifact)
		if err == nil {
			logger.Debugf("Resolved %d versions for %s (artifact %q)", len(versions), coord.Key(), artifact)
			return versions, nil
		}

		var regErr *entities.RegistryError
		if errors.As(err, &regErr) && regErr.Kind == entities.RegistryNotFound {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

func (it *MavenRegistryRepository) listVersions(
	ctx context.Context, coord entities.Coordinate, artifact string,
) ([]string, error) {
	listingURL := fmt.Sprintf("%s/%s/%s/", it.baseURL, strings.ReplaceAll(coord.Group, ".", "/"), artifact)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", listingURL, err)
	}

	resp, err := it.client.Do(req)
	if err != nil {
		// A cancelled run is not a registry failure: the bare context error
		// must surface so the whole resolution phase aborts.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &entities.RegistryError{Kind: entities.RegistryNetwork, Coordinate: coord, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &entities.RegistryError{
			Kind:       entities.RegistryNotFound,
			Coordinate: coord,
			Err:        fmt.Errorf("no listing at %q", listingURL),
		}
	case resp.StatusCode != http.StatusOK:
		return nil, &entities.RegistryError{
			Kind:       entities.RegistryNetwork,
			Coordinate: coord,
			Err:        fmt.Errorf("unexpected status %d from %q", resp.StatusCode, listingURL),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &entities.RegistryError{Kind: entities.RegistryMalformed, Coordinate: coord, Err: err}
	}

	var versions []string
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		// Version entries are the subdirectories of the listing.
		if !strings.HasSuffix(name, "/") {
			return
		}
		name = strings.TrimSuffix(name, "/")
		if name == "" || name == ".." {
			return
		}
		versions = append(versions, name)
	})

	sortVersionsDescending(versions)
	return versions, nil
}

// artifactNames returns the artifact directory names to probe, in order.
// Plain dependencies map one-to-one; cross-built dependencies carry a Scala
// binary suffix that is not part of the declared artifact identifier.
func artifactNames(coord entities.Coordinate, scalaVersion string) []string {
	if !coord.CrossBuilt {
		return []string{coord.Artifact}
	}

	suffixes := []string{"_3", "_2.13", "_2.12", ""}
	if bin := binaryVersion(scalaVersion); bin != "" {
		preferred := "_" + bin
		ordered := []string{preferred}
		for _, s := range suffixes {
			if s != preferred {
				ordered = append(ordered, s)
			}
		}
		suffixes = ordered
	}

	names := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		names = append(names, coord.Artifact+s)
	}
	return names
}

// binaryVersion reduces a full Scala version to its binary version
// ("2.13.8" -> "2.13", any 3.x -> "3").
func binaryVersion(scalaVersion string) string {
	if scalaVersion == "" {
		return ""
	}
	if strings.HasPrefix(scalaVersion, "3.") || scalaVersion == "3" {
		return "3"
	}
	parts := strings.SplitN(scalaVersion, ".", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// sortVersionsDescending orders version strings newest first, using semver
// ordering where both sides parse and falling back to string comparison.
func sortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		vi, vj := normalizeVersion(versions[i]), normalizeVersion(versions[j])
		if semver.IsValid(vi) && semver.IsValid(vj) {
			return semver.Compare(vi, vj) > 0
		}
		return versions[i] > versions[j]
	})
}

// normalizeVersion converts a Maven version to the "vX.Y.Z" shape the semver
// package expects.
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
