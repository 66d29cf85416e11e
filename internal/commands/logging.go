package commands

import (
	"strings"

	"github.com/calliri/go-devlog/internal/logging"
	"github.com/calliri/go-devlog/pkg/interfaces"
)

const commandModuleRoot = "devlog.commands"

// CommandLogger returns a module-scoped logger for command handlers. Every
// entry carries the component and command module as structured fields so
// executions from different handlers are easy to correlate.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(
		logging.ModuleLogger(provider, commandModuleRoot+"."+name),
		map[string]any{
			"component":      "command",
			"command_module": name,
		},
	)
}
