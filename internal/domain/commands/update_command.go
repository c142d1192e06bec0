package commands

import (
	"context"
	"errors"
	"sort"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/entities"
	"github.com/scalatools/sbtup/internal/domain/repositories"
	"github.com/scalatools/sbtup/internal/scanner"
)

// ErrCancelled is returned when the user leaves the selection UI without
// confirming. The process exits non-zero and no file is touched.
var ErrCancelled = errors.New("selection cancelled")

// Update is the interface for the update command.
type Update interface {
	Execute(ctx context.Context, cfg *config.Config, opts UpdateOptions) error
}

// UpdateOptions holds runtime options for a single run.
type UpdateOptions struct {
	Dir       string
	All       bool   // Select every candidate without the interactive picker
	DryRun    bool   // Report planned changes without writing
	Verbose   bool
	NoBackup  bool   // Override the configured backup behavior
	GitBranch string // If set, commit the rewritten files on this branch
}

// UpdateCommand orchestrates the full update flow: scan the build files,
// resolve published versions concurrently, classify upgrade candidates, let
// the user pick, and splice the chosen versions back into the original text.
type UpdateCommand struct {
	registryFactory repositories.RegistryFactory
	selector        repositories.CandidateSelector
	workspace       repositories.WorkspaceRepository
	vcs             repositories.VCSRepository
}

func NewUpdateCommand(
	registryFactory repositories.RegistryFactory,
	selector repositories.CandidateSelector,
	workspace repositories.WorkspaceRepository,
	vcs repositories.VCSRepository,
) *UpdateCommand {
	return &UpdateCommand{
		registryFactory: registryFactory,
		selector:        selector,
		workspace:       workspace,
		vcs:             vcs,
	}
}

// workspaceScan is the read-once snapshot of the project's build files.
type workspaceScan struct {
	contents     map[string]string
	declarations []entities.Declaration
	scalaVersion string
}

func (it *UpdateCommand) Execute(ctx context.Context, cfg *config.Config, opts UpdateOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	scan, err := it.scanWorkspace(opts.Dir, cfg.Excludes)
	if err != nil {
		return err
	}
	if len(scan.declarations) == 0 {
		logger.Info("No dependency declarations found")
		return nil
	}

	coords := distinctCoordinates(scan.declarations)
	logger.Infof("Resolving %d dependency coordinate(s) from the registry...", len(coords))

	versionsByKey, failures, err := it.resolveAll(ctx, cfg, coords, scan.scalaVersion)
	if err != nil {
		return err
	}
	for key, lookupErr := range failures {
		logger.Warnf("No update available for %s: %v", key, lookupErr)
	}

	candidates := buildCandidates(coords, scan.declarations, versionsByKey)
	if len(candidates) == 0 {
		logger.Info("All dependencies are up to date")
		return nil
	}

	session := entities.NewSelectionSession(candidates)
	if opts.All {
		session.SelectAll()
	} else {
		confirmed, selectErr := it.selector.Select(ctx, session)
		if selectErr != nil {
			return selectErr
		}
		if !confirmed {
			return ErrCancelled
		}
	}

	selected := session.Selected()
	if len(selected) == 0 {
		logger.Info("Nothing selected, leaving the build files untouched")
		return nil
	}

	return it.applySelection(cfg, opts, scan, selected)
}

func (it *UpdateCommand) scanWorkspace(dir string, excludes []string) (*workspaceScan, error) {
	files, err := it.workspace.ListBuildFiles(dir)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(excludes))
	for _, key := range excludes {
		excluded[key] = true
	}

	scan := &workspaceScan{contents: make(map[string]string, len(files))}
	for _, path := range files {
		content, readErr := it.workspace.ReadFile(path)
		if readErr != nil {
			return nil, readErr
		}
		scan.contents[path] = content

		result, scanErr := scanner.Scan(content, path)
		if scanErr != nil {
			return nil, scanErr
		}
		for _, decl := range result.Declarations {
			if excluded[decl.Coordinate.Group+":"+decl.Coordinate.Artifact] {
				logger.Debugf("Skipping excluded dependency %s", decl.Coordinate.Key())
				continue
			}
			scan.declarations = append(scan.declarations, decl)
		}
		if scan.scalaVersion == "" {
			scan.scalaVersion = result.ScalaVersion
		}
	}
	return scan, nil
}

// distinctCoordinates returns the unique coordinates in extraction order.
// Duplicate declarations of one coordinate resolve once and share a result.
func distinctCoordinates(declarations []entities.Declaration) []entities.Coordinate {
	seen := make(map[string]bool, len(declarations))
	var coords []entities.Coordinate
	for _, decl := range declarations {
		key := decl.Coordinate.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		coords = append(coords, decl.Coordinate)
	}
	return coords
}

// resolveAll fans the registry lookups out over a bounded worker pool. A
// per-coordinate registry failure is isolated into the failures map; any
// other failure (cancellation included) aborts the whole resolution phase.
func (it *UpdateCommand) resolveAll(
	ctx context.Context,
	cfg *config.Config,
	coords []entities.Coordinate,
	scalaVersion string,
) (map[string][]entities.Version, map[string]error, error) {
	registry := it.registryFactory(cfg)

	var mu sync.Mutex
	versionsByKey := make(map[string][]entities.Version, len(coords))
	failures := make(map[string]error)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Concurrency)

	for _, coord := range coords {
		group.Go(func() error {
			raw, err := registry.Versions(groupCtx, coord, scalaVersion)
			if err != nil {
				// Cancellation aborts the run even when a registry wraps the
				// context error in its own failure type.
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				var regErr *entities.RegistryError
				if errors.As(err, &regErr) {
					mu.Lock()
					failures[coord.Key()] = err
					mu.Unlock()
					return nil
				}
				return err
			}

			versions := make([]entities.Version, 0, len(raw))
			for _, r := range raw {
				versions = append(versions, entities.ParseVersion(r))
			}
			mu.Lock()
			versionsByKey[coord.Key()] = versions
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return versionsByKey, failures, nil
}

// buildCandidates joins the resolution results back against the extraction
// order, producing at most one candidate per coordinate regardless of which
// lookups finished first.
func buildCandidates(
	coords []entities.Coordinate,
	declarations []entities.Declaration,
	versionsByKey map[string][]entities.Version,
) []entities.UpdateCandidate {
	currentByKey := make(map[string]entities.Version, len(coords))
	for _, decl := range declarations {
		key := decl.Coordinate.Key()
		declared := entities.ParseVersion(decl.Version)
		if current, ok := currentByKey[key]; !ok || declared.Compare(current) > 0 {
			currentByKey[key] = declared
		}
	}

	var candidates []entities.UpdateCandidate
	for _, coord := range coords {
		versions, ok := versionsByKey[coord.Key()]
		if !ok {
			continue
		}
		if candidate := entities.Classify(coord, currentByKey[coord.Key()], versions); candidate != nil {
			candidates = append(candidates, *candidate)
		}
	}
	return candidates
}

func (it *UpdateCommand) applySelection(
	cfg *config.Config,
	opts UpdateOptions,
	scan *workspaceScan,
	selected []entities.UpdateCandidate,
) error {
	plans := buildEditPlans(scan.declarations, selected)

	if opts.DryRun {
		for _, candidate := range selected {
			logger.Infof("[dry-run] %s: %s -> %s (%s)",
				candidate.Coordinate.Key(), candidate.Current.Raw, candidate.Proposed.Raw, candidate.Rank)
		}
		return nil
	}

	// Validate every file before writing any, so a rewrite failure in one
	// file never leaves the workspace half-updated.
	rewritten := make(map[string]string, len(plans))
	for path, edits := range plans {
		newText, err := entities.ApplyEdits(scan.contents[path], edits)
		if err != nil {
			return err
		}
		rewritten[path] = newText
	}

	backup := cfg.Backup && !opts.NoBackup
	paths := make([]string, 0, len(rewritten))
	for path := range rewritten {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := it.workspace.WriteFile(path, rewritten[path], backup); err != nil {
			return err
		}
	}

	if opts.GitBranch != "" {
		message := commitMessage(selected)
		if err := it.vcs.CommitOnBranch(opts.Dir, opts.GitBranch, message, paths); err != nil {
			return err
		}
	}

	for _, candidate := range selected {
		logger.Infof("%s: %s -> %s (%s)",
			candidate.Coordinate.Key(), candidate.Current.Raw, candidate.Proposed.Raw, candidate.Rank)
	}
	logger.Infof("Applied %d update(s) across %d file(s)", len(selected), len(paths))
	return nil
}

// buildEditPlans derives the per-file edit plans from the selection. Several
// declarations may share one span (a val definition referenced many times);
// the span is edited once.
func buildEditPlans(
	declarations []entities.Declaration,
	selected []entities.UpdateCandidate,
) map[string][]entities.Edit {
	proposedByKey := make(map[string]string, len(selected))
	for _, candidate := range selected {
		proposedByKey[candidate.Coordinate.Key()] = candidate.Proposed.Raw
	}

	type spanKey struct {
		path string
		span entities.Span
	}
	planned := make(map[spanKey]bool)

	plans := make(map[string][]entities.Edit)
	for _, decl := range declarations {
		proposed, ok := proposedByKey[decl.Coordinate.Key()]
		if !ok {
			continue
		}
		key := spanKey{path: decl.FilePath, span: decl.Span}
		if planned[key] {
			continue
		}
		planned[key] = true
		plans[decl.FilePath] = append(plans[decl.FilePath], entities.Edit{
			Span: decl.Span,
			Text: `"` + proposed + `"`,
		})
	}
	return plans
}

// commitMessage summarizes the applied upgrades for the VCS commit.
func commitMessage(selected []entities.UpdateCandidate) string {
	if len(selected) == 1 {
		c := selected[0]
		return "Update " + c.Coordinate.Key() + " to " + c.Proposed.Raw
	}
	message := "Update dependency versions\n"
	for _, c := range selected {
		message += "\n- " + c.Coordinate.Key() + ": " + c.Current.Raw + " -> " + c.Proposed.Raw
	}
	return message
}
