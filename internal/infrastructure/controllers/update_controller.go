package controllers

import (
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/commands"
	"github.com/scalatools/sbtup/internal/domain/entities"
)

// UpdateController handles the "update" subcommand (and the bare root
// invocation, which behaves the same).
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update [path]",
		Short: "Find and apply dependency updates for an sbt project",
		Long: `Scan the project's build.sbt (and project/*.sbt) for dependency
declarations, resolve the published versions from the configured Maven
repository, and interactively pick the upgrades to apply.

Only the selected version literals are rewritten; every other byte of the
build files is preserved exactly.`,
	}
}

// Execute runs the update flow. A user interrupt cancels in-flight registry
// lookups and exits without writing any file.
func (it *UpdateController) Execute(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	all, _ := cmd.Flags().GetBool("all")
	noBackup, _ := cmd.Flags().GetBool("no-backup")
	gitBranch, _ := cmd.Flags().GetString("git-branch")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, cfg, commands.UpdateOptions{
		Dir:       dir,
		All:       all,
		DryRun:    dryRun,
		Verbose:   verbose,
		NoBackup:  noBackup,
		GitBranch: gitBranch,
	})
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "Apply every available update without the interactive picker")
	cmd.Flags().Bool("no-backup", false, "Do not keep .bak copies of rewritten files")
	cmd.Flags().String("git-branch", "", "Commit the rewritten files on this new branch")
}

// loadConfig resolves the configuration: an explicit --config path, then the
// standard locations, then the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return config.Default(), nil
		}
		path = found
	}

	logger.Infof("Using config file: %s", path)
	return config.Load(path)
}
