package controllers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalatools/sbtup/internal/infrastructure/controllers"
	"github.com/scalatools/sbtup/test/domain/commanddoubles"
)

func newTestCmd(controller *controllers.UpdateController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "update"}
	cmd.SetContext(context.Background())
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().Bool("verbose", false, "")
	controller.AddFlags(cmd)
	return cmd
}

func TestUpdateController_Execute(t *testing.T) {
	t.Run("should default to the current directory", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateController(stub)
		cmd := newTestCmd(controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.Calls)
		assert.Equal(t, ".", stub.Opts.Dir)
	})

	t.Run("should pass the flags through to the command", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateController(stub)
		cmd := newTestCmd(controller)
		require.NoError(t, cmd.Flags().Set("all", "true"))
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))
		require.NoError(t, cmd.Flags().Set("no-backup", "true"))
		require.NoError(t, cmd.Flags().Set("git-branch", "sbtup/updates"))

		// when
		err := controller.Execute(cmd, []string{"/work/project"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/work/project", stub.Opts.Dir)
		assert.True(t, stub.Opts.All)
		assert.True(t, stub.Opts.DryRun)
		assert.True(t, stub.Opts.NoBackup)
		assert.Equal(t, "sbtup/updates", stub.Opts.GitBranch)
	})

	t.Run("should fall back to the default configuration", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateController(stub)
		cmd := newTestCmd(controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.Cfg)
		assert.Equal(t, "https://repo1.maven.org/maven2", stub.Cfg.Registry.URL)
	})

	t.Run("should surface the command error", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		stub := &commanddoubles.StubUpdateCommand{Err: errors.New("boom")}
		controller := controllers.NewUpdateController(stub)
		cmd := newTestCmd(controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
	})
}
