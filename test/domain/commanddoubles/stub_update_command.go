// Package commanddoubles provides test doubles for domain command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/scalatools/sbtup/config"
	"github.com/scalatools/sbtup/internal/domain/commands"
)

// StubUpdateCommand implements commands.Update and records its invocation.
type StubUpdateCommand struct {
	Err error

	Calls int
	Cfg   *config.Config
	Opts  commands.UpdateOptions
}

var _ commands.Update = (*StubUpdateCommand)(nil)

func (s *StubUpdateCommand) Execute(
	_ context.Context, cfg *config.Config, opts commands.UpdateOptions,
) error {
	s.Calls++
	s.Cfg = cfg
	s.Opts = opts
	return s.Err
}
