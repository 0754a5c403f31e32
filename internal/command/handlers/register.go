// Package handlers provides explicit registration of all command handlers.
// Registration is explicit rather than init()-based, so the set of commands
// is visible in one place and free of import side effects.
package handlers

import (
	"github.com/Kargones/travis/internal/command/handlers/buildshandler"
	"github.com/Kargones/travis/internal/command/handlers/envhandler"
	"github.com/Kargones/travis/internal/command/handlers/help"
	"github.com/Kargones/travis/internal/command/handlers/jobshandler"
	"github.com/Kargones/travis/internal/command/handlers/reposhandler"
	"github.com/Kargones/travis/internal/command/handlers/version"
	"github.com/Kargones/travis/internal/command/handlers/whoamihandler"
)

// RegisterAll explicitly registers all command handlers in the global registry.
// Call this once from main() before using any commands.
// Returns an error if any handler registration fails.
func RegisterAll() error {
	if err := help.RegisterCmd(); err != nil {
		return err
	}
	if err := version.RegisterCmd(); err != nil {
		return err
	}
	if err := whoamihandler.RegisterCmd(); err != nil {
		return err
	}
	if err := reposhandler.RegisterCmd(); err != nil {
		return err
	}
	if err := buildshandler.RegisterCmd(); err != nil {
		return err
	}
	if err := jobshandler.RegisterCmd(); err != nil {
		return err
	}
	if err := envhandler.RegisterCmd(); err != nil {
		return err
	}
	return nil
}
