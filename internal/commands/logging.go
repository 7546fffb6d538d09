package commands

import (
	"strings"

	"github.com/goliatone/go-portfolio/internal/logging"
)

const commandModuleRoot = "portfolio.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriched
// with consistent structured fields so executions can be filtered predictably.
func CommandLogger(provider logging.LoggerProvider, module string) logging.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
